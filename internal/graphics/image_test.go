package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 1000: 1024}
	for in, want := range cases {
		assert.Equal(t, want, NextPowerOfTwo(in), "NextPowerOfTwo(%d)", in)
	}
}

func TestPowerOfTwo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 110, 60))
	out := PowerOfTwo(src, MaxTextureSize)
	assert.Equal(t, image.Rect(0, 0, 128, 64), out.Bounds())

	big := image.NewRGBA(image.Rect(0, 0, 3000, 16))
	assert.Equal(t, image.Rect(0, 0, MaxTextureSize, 16), PowerOfTwo(big, MaxTextureSize).Bounds())

	exact := SwissFlag(32)
	assert.Equal(t, exact.Pix, PowerOfTwo(exact, MaxTextureSize).Pix)
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(1, 2, color.RGBA{G: 2, A: 255})

	FlipVertical(img)
	assert.Equal(t, color.RGBA{R: 1, A: 255}, img.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{G: 2, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestSwissFlag(t *testing.T) {
	img := SwissFlag(100)
	assert.Equal(t, swissWhite, img.RGBAAt(50, 50), "center")
	assert.Equal(t, swissWhite, img.RGBAAt(50, 25), "upper arm")
	assert.Equal(t, swissWhite, img.RGBAAt(75, 50), "right arm")
	assert.Equal(t, swissRed, img.RGBAAt(5, 5), "corner")
	assert.Equal(t, swissRed, img.RGBAAt(75, 25), "between arms")
	assert.Equal(t, swissRed, img.RGBAAt(50, 95), "below cross")
}

func TestDecodeImage(t *testing.T) {
	src := SwissFlag(8)
	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf))

			img, format, err := DecodeImage(&buf)
			require.NoError(t, err)
			assert.Equal(t, name, format)
			assert.Equal(t, src.Bounds(), img.Bounds())
		})
	}

	_, _, err := DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
