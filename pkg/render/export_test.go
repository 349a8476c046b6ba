package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCanvas() *Canvas {
	c := NewCanvas("Drawing shapes", 300, 200, nil)
	c.DrawRectangle(110, 20, 200, 60, "yellow")
	c.DrawEllipse(10, 100, 90, 180, "blue")
	c.DrawPolygon([]Point{{200, 100}, {290, 100}, {290, 190}}, "green")
	return c
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRasterRenderer(nil).WritePNG(sampleCanvas(), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	r, g, b, a := img.At(155, 40).RGBA()
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})

	r, g, b, _ = img.At(5, 5).RGBA()
	assert.Equal(t, []uint32{0xff, 0xff, 0xff}, []uint32{r >> 8, g >> 8, b >> 8}, "background")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewVectorRenderer(nil).WriteSVG(sampleCanvas(), &buf))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<rect"), "background plus one rectangle")
	assert.Equal(t, 1, strings.Count(out, "<ellipse"))
	assert.Equal(t, 1, strings.Count(out, "<polygon"))
	assert.Contains(t, out, `x="110" y="20" width="90" height="40"`)
	assert.Contains(t, out, "fill:#ffff00;stroke:#000000")
	assert.Contains(t, out, "<title>Drawing shapes</title>")
}
