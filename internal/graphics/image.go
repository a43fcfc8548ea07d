package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math/bits"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxTextureSize bounds the side of any texture built from a file.
const MaxTextureSize = 1024

var (
	swissRed   = color.RGBA{R: 0xda, G: 0x29, B: 0x1c, A: 0xff}
	swissWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DecodeImage reads a PNG, JPEG, GIF, BMP, TIFF or WebP image.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := DecodeImage(file)
	return img, err
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// PowerOfTwo copies img into a new RGBA image whose sides are powers of two no
// larger than maxSize, scaling when the size changes.
func PowerOfTwo(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w := min(NextPowerOfTwo(b.Dx()), maxSize)
	h := min(NextPowerOfTwo(b.Dy()), maxSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FlipVertical reverses the rows of img in place, turning top-down image
// order into the bottom-up order GL textures use.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for y := range h / 2 {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// SwissFlag draws a white Greek cross on red. The arms reach 0.6 of the half
// width from the center and are 0.4 of it wide.
func SwissFlag(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(swissRed), image.Point{}, draw.Src)

	half := float32(size) / 2
	inCross := func(x, y int) bool {
		cx := abs32((float32(x) + 0.5 - half) / half)
		cy := abs32((float32(y) + 0.5 - half) / half)
		return (cx <= 0.2 && cy <= 0.6) || (cy <= 0.2 && cx <= 0.6)
	}
	for y := range size {
		for x := range size {
			if inCross(x, y) {
				img.SetRGBA(x, y, swissWhite)
			}
		}
	}
	return img
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
