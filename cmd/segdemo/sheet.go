package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/xTibor/segdisplay"
	"github.com/xTibor/segdisplay/recording"
)

const captionSize = 14

// sampleText is shown for each kind when no lines are given.
var sampleText = map[segdisplay.Kind]string{
	segdisplay.SevenSegment:   "12:34.5-6'7",
	segdisplay.NineSegment:    "Z-7/42.0",
	segdisplay.SixteenSegment: "Hi:WORLD.'*",
}

// caption is a label placed at the top-left of an allocated rectangle.
type caption struct {
	text string
	rect segdisplay.Rect
}

func loadCaptionFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("caption face: %w", err)
	}
	return face, nil
}

// drawSheet records every kind in every style preset, each preceded by a
// caption row.
func drawSheet(rec *recording.Recorder, cfg config) ([]caption, error) {
	face, err := loadCaptionFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	var captions []caption
	for _, kind := range segdisplay.Kinds() {
		lines := cfg.lines
		if len(lines) == 0 {
			lines = []string{sampleText[kind]}
		}
		for _, style := range segdisplay.StylePresets() {
			label := fmt.Sprintf("%s / %s", kind, style)
			w := font.MeasureString(face, label).Ceil()
			rect := rec.AllocateRect(segdisplay.Size{W: float64(w), H: captionSize + 4})
			captions = append(captions, caption{text: label, rect: rect})

			for _, line := range lines {
				newDisplay(cfg, kind, style).PushString(line).Paint(rec)
			}
		}
	}
	return captions, nil
}

func drawCaptions(img *image.RGBA, captions []caption) error {
	face, err := loadCaptionFace()
	if err != nil {
		return err
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for _, c := range captions {
		d.Dot = fixed.Point26_6{
			X: fixed.I(int(c.rect.Min.X)),
			Y: fixed.I(int(c.rect.Min.Y)) + ascent,
		}
		d.DrawString(c.text)
	}
	return nil
}
