package jet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type Format string

const (
	FormatTSV     Format = "tsv"
	FormatJSON    Format = "json"
	FormatPreview Format = "preview"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTSV, FormatJSON, FormatPreview:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'tsv', 'json' or 'preview')", s)
	}
}

func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatPreview:
		return WritePreview(w, entries)
	default:
		return WriteTSV(w, entries)
	}
}

// WriteTSV writes label<TAB>old<TAB>new rows joined by newlines, without a
// trailing newline.
func WriteTSV(w io.Writer, entries []Entry) error {
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = e.Label + "\t" + e.Old.String() + "\t" + e.New.String()
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	output, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func WritePreview(w io.Writer, entries []Entry) error {
	labelWidth := 0
	valueWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, len(e.Label))
		valueWidth = max(valueWidth, len(e.Old.String()), len(e.New.String()))
	}

	labelStyle := lipgloss.NewStyle().Width(labelWidth + 2)
	for _, e := range entries {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(e.Label),
			swatch(e.Old, valueWidth),
			" → ",
			swatch(e.New, valueWidth),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func swatch(v Value, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(v.Color.Hex())).
		Foreground(lipgloss.Color(textColorFor(v.Color))).
		Padding(0, 1).
		Width(width + 2).
		Render(v.String())
}

// textColorFor picks black or white text by CIE L* of the background.
func textColorFor(bg Color) string {
	c := colorful.Color{R: float64(bg.R) / 255.0, G: float64(bg.G) / 255.0, B: float64(bg.B) / 255.0}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
