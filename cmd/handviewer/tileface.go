package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"riichi-go/tile"
)

// suitColor picks a face color per suit, loosely matching the teacher's
// terminal tile-name convention (m/p/s/z) so a viewer can tell suits apart
// at a glance without reading the numeral.
func suitColor(t tile.Tile) string {
	switch t.Suit() {
	case tile.SuitMan:
		return "#1d4ed8" // blue
	case tile.SuitPin:
		return "#b91c1c" // red
	case tile.SuitSou:
		return "#15803d" // green
	default:
		return "#111827" // near-black for honors
	}
}

// tileGlyph renders a tile as two characters: its numeral/wind-dragon letter
// and its suit letter, matching tile.Tile.String's "<digit><suit>" shorthand.
func tileGlyph(t tile.Tile) string {
	return t.String()
}

// tileSVG builds a small rounded-rect tile face with its glyph centered,
// procedurally rather than loading an asset file — there is no tile-image
// asset in this repository, only the teacher's plain-text tile names.
func tileSVG(t tile.Tile, size int) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 64 88">
<rect x="2" y="2" width="60" height="84" rx="8" ry="8" fill="#fdfdfd" stroke="#333333" stroke-width="3"/>
<text x="32" y="54" font-size="28" font-family="sans-serif" font-weight="bold"
  text-anchor="middle" fill="%s">%s</text>
</svg>`, size, size, suitColor(t), tileGlyph(t))
}

// supersampleFactor renders tile faces at a higher resolution than requested
// and downsamples, since oksvg/rasterx's scanline rasterizer aliases badly at
// the small sizes a hand row displays tiles at.
const supersampleFactor = 2

// rasterizeTile parses a generated tile-face SVG, rasterizes it at
// supersampleFactor*size via the oksvg+rasterx pipeline Fyne's own
// vector-icon renderer uses internally, then downsamples to size x size.
func rasterizeTile(t tile.Tile, size int) (*image.RGBA, error) {
	big := size * supersampleFactor
	icon, err := oksvg.ReadIconStream(bytes.NewBufferString(tileSVG(t, big)))
	if err != nil {
		return nil, fmt.Errorf("parsing tile svg for %s: %w", t, err)
	}
	icon.SetTarget(0, 0, float64(big), float64(big))

	img := image.NewRGBA(image.Rect(0, 0, big, big))
	scanner := rasterx.NewScannerGV(big, big, img, img.Bounds())
	raster := rasterx.NewDasher(big, big, scanner)
	icon.Draw(raster, 1.0)

	return scaleTile(img, size, size), nil
}

// scaleTile resizes src to exactly width x height using a Catmull-Rom
// resampler, for rendering tile faces at a display size different from the
// rasterization size (e.g. a compact hand row vs. a zoomed detail view).
func scaleTile(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
