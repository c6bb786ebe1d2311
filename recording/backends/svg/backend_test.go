package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xTibor/segdisplay"
	"github.com/xTibor/segdisplay/recording"
)

func TestRegistered(t *testing.T) {
	require.True(t, recording.IsRegistered("svg"))
	b, err := recording.NewBackend("svg")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}

func TestDocument(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(40, 20, segdisplay.Hex("#102030")))
	b.FillPolygon([]segdisplay.Point{{X: 0, Y: 0}, {X: 10.5, Y: 0}, {X: 10.5, Y: 1.0 / 3}}, segdisplay.Hex("#ff0000"), segdisplay.NoStroke)
	b.FillCircle(segdisplay.Pt(5, 6), 2, segdisplay.Hex("#00ff0080"), segdisplay.Stroke{Width: 1, Color: segdisplay.White})
	require.NoError(t, b.End())

	doc := b.String()
	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="20" viewBox="0 0 40 20">`))
	assert.Contains(t, doc, `<rect width="40" height="20" fill="#102030"/>`)
	assert.Contains(t, doc, `<polygon points="0,0 10.5,0 10.5,0.333" fill="#ff0000"/>`)
	assert.Contains(t, doc, `<circle cx="5" cy="6" r="2" fill="#00ff00" fill-opacity="0.502" stroke="#ffffff" stroke-width="1" stroke-linejoin="round"/>`)
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
}

func TestTransparentBackgroundAndFill(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(4, 4, segdisplay.Transparent))
	b.FillPolygon([]segdisplay.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, segdisplay.Transparent, segdisplay.Stroke{Width: 1, Color: segdisplay.Black})
	b.FillPolygon([]segdisplay.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, segdisplay.Black, segdisplay.NoStroke)
	b.FillCircle(segdisplay.Pt(1, 1), 0, segdisplay.Black, segdisplay.NoStroke)
	require.NoError(t, b.End())

	doc := b.String()
	assert.NotContains(t, doc, "<rect")
	assert.NotContains(t, doc, "<circle")
	assert.Equal(t, 1, strings.Count(doc, "<polygon"))
	assert.Contains(t, doc, `fill="none" stroke="#000000"`)
}

func TestOutputBeforeEnd(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(4, 4, segdisplay.Black))

	_, err := b.WriteTo(io.Discard)
	assert.ErrorIs(t, err, ErrNotFinished)
	assert.ErrorIs(t, b.SaveToFile(filepath.Join(t.TempDir(), "x.svg")), ErrNotFinished)
}

func TestPlaybackIsWellFormed(t *testing.T) {
	rec := recording.NewRecorder(recording.WithPadding(4), recording.WithBackground(segdisplay.Black))
	segdisplay.New(segdisplay.SixteenSegment,
		segdisplay.WithStylePreset(segdisplay.StyleDeLoreanGreen),
	).PushString("12:AB.").Paint(rec)
	r := rec.FinishRecording()

	b := NewBackend()
	require.NoError(t, r.Playback(b))

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	dec := xml.NewDecoder(&buf)
	elements := map[string]int{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if se, ok := tok.(xml.StartElement); ok {
			elements[se.Name.Local]++
		}
	}
	assert.Equal(t, 1, elements["svg"])
	assert.Equal(t, 1, elements["rect"])
	assert.Equal(t, r.Count(recording.CmdPolygon), elements["polygon"])
	assert.Equal(t, r.Count(recording.CmdCircle), elements["circle"])

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, b.SaveToFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.String(), string(data))
}
