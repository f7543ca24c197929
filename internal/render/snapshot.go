package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Snapshot rasterizes a cell buffer into an NRGBA image, upscaling each cell
// to scale x scale pixels. A nil palette falls back to white-on-black binary
// rendering.
func Snapshot(cells []uint8, side int, palette []color.RGBA, scale int) (*image.NRGBA, error) {
	if side <= 0 || len(cells) != side*side {
		return nil, fmt.Errorf("snapshot: %d cells do not fill a %dx%d grid", len(cells), side, side)
	}
	if scale < 1 {
		scale = 1
	}

	row := make([]byte, 4*side)
	img := image.NewNRGBA(image.Rect(0, 0, side*scale, side*scale))
	buf := make([]byte, 4*len(cells))
	if palette != nil {
		fillPaletteRGBA(buf, cells, palette)
	} else {
		fillBinaryRGBA(buf, cells, color.White, color.Black)
	}

	for y := 0; y < side; y++ {
		copy(row, buf[4*y*side:4*(y+1)*side])
		for sy := 0; sy < scale; sy++ {
			dstY := y*scale + sy
			for x := 0; x < side; x++ {
				src := row[4*x : 4*x+4]
				for sx := 0; sx < scale; sx++ {
					dst := img.PixOffset(x*scale+sx, dstY)
					copy(img.Pix[dst:dst+4], src)
				}
			}
		}
	}
	return img, nil
}

// WritePNG renders the cell buffer and writes it to path as a PNG.
func WritePNG(path string, cells []uint8, side int, palette []color.RGBA, scale int) error {
	img, err := Snapshot(cells, side, palette, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
