package jet

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{Label: "jet", Old: Opaque(MustParseHex("#23262b")), New: Opaque(MustParseHex("#1a1d21"))},
		{
			Label: "osd_rgba",
			Old:   Value{Color: MustParseHex("#282b31"), Alpha: 0.975, Translucent: true},
			New:   Value{Color: MustParseHex("#1e2227"), Alpha: 0.975, Translucent: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"tsv", "JSON", "Preview"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("csv")
	assert.EqualError(t, err, "invalid format: csv (must be 'tsv', 'json' or 'preview')")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleEntries()))

	expected := "jet\t#23262b\t#1a1d21\nosd_rgba\trgba(40, 43, 49, 0.975)\trgba(30, 34, 39, 0.975)"
	assert.Equal(t, expected, buf.String())
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteTSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleEntries()))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []map[string]string{
		{"label": "jet", "old": "#23262b", "new": "#1a1d21"},
		{"label": "osd_rgba", "old": "rgba(40, 43, 49, 0.975)", "new": "rgba(30, 34, 39, 0.975)"},
	}, decoded)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWritePreview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatPreview, sampleEntries()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "jet")
	assert.Contains(t, lines[0], "#23262b")
	assert.Contains(t, lines[0], "#1a1d21")
	assert.Contains(t, lines[1], "rgba(40, 43, 49, 0.975)")
}

func TestTextColorFor(t *testing.T) {
	assert.Equal(t, "#ffffff", textColorFor(MustParseHex("#23262b")))
	assert.Equal(t, "#000000", textColorFor(MustParseHex("#ffffff")))
	assert.Equal(t, "#000000", textColorFor(MustParseHex("#f0e68c")))
}
