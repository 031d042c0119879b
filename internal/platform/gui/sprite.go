package gui

import (
	"image"
	"math"

	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

// blockImage paints a block in its own coordinate space: gradient body,
// highlight on the top and left edges, shadow on the bottom and right edges,
// then the inner bevel.
func blockImage(b blockbreaker.BlockView) *image.RGBA {
	w := int(math.Ceil(b.Rect.W))
	h := int(math.Ceil(b.Rect.H))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Strokes are centred on the edge, so half their width falls inside.
	edge := max(int(math.Round(b.EdgeWidth/2)), 1)
	bevel := b.Bevel
	bevel.X -= b.Rect.X
	bevel.Y -= b.Rect.Y

	for y := range h {
		for x := range w {
			fx := b.Rect.X + float64(x) + 0.5
			fy := b.Rect.Y + float64(y) + 0.5
			c := b.Shade(fx, fy)

			switch {
			case x < edge || y < edge:
				c = b.Highlight.Over(c)
			case x >= w-edge || y >= h-edge:
				c = b.Shadow.Over(c)
			}
			if bevel.Contains(float64(x)+0.5, float64(y)+0.5) {
				c = b.BevelColor
			}
			img.Set(x, y, c)
		}
	}
	return img
}
