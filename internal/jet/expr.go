package jet

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenNumber
	tokenLParen
	tokenRParen
	tokenComma
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of formula"
	case tokenIdent:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenComma:
		return "','"
	default:
		return "unknown"
	}
}

type token struct {
	typ     tokenType
	literal string
	pos     int
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]
	switch ch {
	case '(':
		l.pos++
		return token{typ: tokenLParen, literal: "(", pos: start}, nil
	case ')':
		l.pos++
		return token{typ: tokenRParen, literal: ")", pos: start}, nil
	case ',':
		l.pos++
		return token{typ: tokenComma, literal: ",", pos: start}, nil
	}

	if isIdentStart(ch) {
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return token{typ: tokenIdent, literal: l.input[start:l.pos], pos: start}, nil
	}

	if isDigit(ch) || ch == '.' || ch == '-' {
		l.pos++
		for l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
			l.pos++
		}
		return token{typ: tokenNumber, literal: l.input[start:l.pos], pos: start}, nil
	}

	return token{}, fmt.Errorf("unexpected character %q at %d", ch, start)
}

func isSpace(ch byte) bool      { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool { return ch == '_' || (ch|0x20 >= 'a' && ch|0x20 <= 'z') }
func isIdentPart(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }

// Syntax tree of a formula before names are resolved.
type node interface {
	position() int
}

type identNode struct {
	name string
	pos  int
}

type numberNode struct {
	value float64
	pos   int
}

type callNode struct {
	fn   string
	args []node
	pos  int
}

func (n identNode) position() int  { return n.pos }
func (n numberNode) position() int { return n.pos }
func (n callNode) position() int   { return n.pos }

type parser struct {
	lex *lexer
	tok token
}

func parseFormula(src string) (node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("empty formula")
	}

	p := &parser{lex: &lexer{input: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.tok.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected %s %q at %d", p.tok.typ, p.tok.literal, p.tok.pos)
	}
	return n, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(typ tokenType) error {
	if p.tok.typ != typ {
		return fmt.Errorf("expected %s at %d, got %s", typ, p.tok.pos, p.tok.typ)
	}
	return p.advance()
}

func (p *parser) parseTerm() (node, error) {
	tok := p.tok
	switch tok.typ {
	case tokenNumber:
		v, err := strconv.ParseFloat(tok.literal, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q at %d", tok.literal, tok.pos)
		}
		return numberNode{value: v, pos: tok.pos}, p.advance()

	case tokenIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.typ != tokenLParen {
			return identNode{name: tok.literal, pos: tok.pos}, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return callNode{fn: tok.literal, args: args, pos: tok.pos}, nil

	default:
		return nil, fmt.Errorf("expected identifier or number at %d, got %s", tok.pos, tok.typ)
	}
}

func (p *parser) parseArgs() ([]node, error) {
	if err := p.expect(tokenLParen); err != nil {
		return nil, err
	}

	var args []node
	if p.tok.typ == tokenRParen {
		return args, p.advance()
	}

	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.tok.typ == tokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		return args, p.expect(tokenRParen)
	}
}
