package jet

import "fmt"

// Value is a derived colour. Translucent values come from transparentize and
// render as rgba(); they cannot be fed into further transforms.
type Value struct {
	Color       Color
	Alpha       float64
	Translucent bool
}

func Opaque(c Color) Value {
	return Value{Color: c, Alpha: 1}
}

func (v Value) String() string {
	if v.Translucent {
		return v.Color.RGBA(v.Alpha)
	}
	return v.Color.Hex()
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type function struct {
	colors      int
	params      int
	translucent bool
	apply       func(colors []Color, params []float64) Value
}

var functions = map[string]function{
	"lighten": {
		colors: 1, params: 1,
		apply: func(c []Color, p []float64) Value { return Opaque(Lighten(c[0], p[0])) },
	},
	"darken": {
		colors: 1, params: 1,
		apply: func(c []Color, p []float64) Value { return Opaque(Darken(c[0], p[0])) },
	},
	"desaturate": {
		colors: 1,
		apply:  func(c []Color, _ []float64) Value { return Opaque(DesaturateToGray(c[0])) },
	},
	"mix": {
		colors: 2, params: 1,
		apply: func(c []Color, p []float64) Value { return Opaque(Mix(c[0], c[1], p[0])) },
	},
	"transparentize": {
		colors: 1, params: 1, translucent: true,
		apply: func(c []Color, p []float64) Value {
			return Value{Color: c[0], Alpha: TransparentAlpha(p[0]), Translucent: true}
		},
	},
}

type expr interface {
	eval(scope map[string]Value) Value
	translucent() bool
}

type refExpr struct {
	name string
	rgba bool
}

func (e refExpr) eval(scope map[string]Value) Value { return scope[e.name] }
func (e refExpr) translucent() bool                 { return e.rgba }

type callExpr struct {
	fn     function
	colors []expr
	params []float64
}

func (e callExpr) eval(scope map[string]Value) Value {
	colors := make([]Color, len(e.colors))
	for i, arg := range e.colors {
		colors[i] = arg.eval(scope).Color
	}
	return e.fn.apply(colors, e.params)
}

func (e callExpr) translucent() bool { return e.fn.translucent }

// compile resolves identifiers against the names bound so far. The map value
// records whether the binding is translucent.
func compile(n node, bound map[string]bool) (expr, error) {
	switch n := n.(type) {
	case identNode:
		rgba, ok := bound[n.name]
		if !ok {
			return nil, fmt.Errorf("unknown color %q at %d", n.name, n.pos)
		}
		return refExpr{name: n.name, rgba: rgba}, nil

	case numberNode:
		return nil, fmt.Errorf("bare number at %d, expected a color", n.pos)

	case callNode:
		fn, ok := functions[n.fn]
		if !ok {
			return nil, fmt.Errorf("unknown function %q at %d", n.fn, n.pos)
		}
		if len(n.args) != fn.colors+fn.params {
			return nil, fmt.Errorf("%s takes %d arguments, got %d", n.fn, fn.colors+fn.params, len(n.args))
		}

		call := callExpr{fn: fn}
		for _, arg := range n.args[:fn.colors] {
			sub, err := compile(arg, bound)
			if err != nil {
				return nil, err
			}
			if sub.translucent() {
				return nil, fmt.Errorf("%s at %d: translucent value cannot be transformed", n.fn, arg.position())
			}
			call.colors = append(call.colors, sub)
		}
		for _, arg := range n.args[fn.colors:] {
			num, ok := arg.(numberNode)
			if !ok {
				return nil, fmt.Errorf("%s at %d: expected a number", n.fn, arg.position())
			}
			call.params = append(call.params, num.value)
		}
		return call, nil
	}

	return nil, fmt.Errorf("unsupported formula node %T", n)
}
