package blockbreaker

import (
	"math"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Terminal glyphs
const (
	BlockChar  = '█'
	PaddleChar = '█'
	BallChar   = '●'
)

// Rasterize draws v into a character screen, scaling field units to cells.
// A cell belongs to a shape when the shape covers the cell's centre.
func Rasterize(v View, dst *core.Screen) {
	dst.SetPen(core.ColorWhite, v.Background)
	dst.Clear()

	cols, rows := dst.Width(), dst.Height()
	if cols <= 0 || rows <= 0 || v.Width <= 0 || v.Height <= 0 {
		return
	}
	sx := float64(cols) / v.Width
	sy := float64(rows) / v.Height

	for _, b := range v.Blocks {
		drawBlock(dst, b, sx, sy, v.Background)
	}

	// Paddle: one row, at the row nearest its centre.
	pr := v.Paddle.Rect
	row := core.Clamp(int(math.Round(pr.Y*sy+pr.H*sy/2)), 0, rows-1)
	c0, c1 := span(pr.X, pr.Right(), sx, cols)
	for x := c0; x <= c1; x++ {
		dst.SetCell(x, row, core.Cell{Rune: PaddleChar, FG: v.Paddle.Color, BG: v.Background})
	}

	// Ball: the cell containing its centre.
	bx, by := int(math.Floor(v.Ball.X*sx)), int(math.Floor(v.Ball.Y*sy))
	dst.SetPen(v.Ball.Color, v.Background)
	dst.Set(bx, by, BallChar)

	// HUD text sits on the row holding the middle of the glyphs.
	for _, t := range v.HUD {
		dst.SetPen(t.Color, v.Background)
		dst.DrawText(int(math.Floor(t.X*sx)), textRow(t, sy, rows), t.Content)
	}

	if v.Modal != nil {
		drawModal(dst, *v.Modal, sx, sy, v.Background)
	}
}

func drawBlock(dst *core.Screen, b BlockView, sx, sy float64, bg core.Color) {
	r := b.Rect
	c0, c1 := span(r.X, r.Right(), sx, dst.Width())
	r0, r1 := span(r.Y, r.Bottom(), sy, dst.Height())
	if c0 > c1 || r0 > r1 {
		return
	}
	tall := r1 > r0

	for y := r0; y <= r1; y++ {
		fy := (float64(y) + 0.5) / sy
		for x := c0; x <= c1; x++ {
			fx := (float64(x) + 0.5) / sx
			shade := b.Shade(fx, fy)

			var fg core.Color
			switch {
			case x == c0 || (tall && y == r0):
				fg = b.Highlight.Over(shade)
			case x == c1 || (tall && y == r1):
				fg = b.Shadow.Over(shade)
			case b.Bevel.Contains(fx, fy):
				fg = b.BevelColor
			default:
				fg = shade
			}
			dst.SetCell(x, y, core.Cell{Rune: BlockChar, FG: fg, BG: bg})
		}
	}
}

func drawModal(dst *core.Screen, m Modal, sx, sy float64, bg core.Color) {
	fill := m.Fill.Over(bg)

	x0 := int(math.Floor(m.Rect.X * sx))
	x1 := int(math.Ceil(m.Rect.Right() * sx))
	y0 := int(math.Floor(m.Rect.Y * sy))
	y1 := int(math.Ceil(m.Rect.Bottom() * sy))

	// Grow the box until every line fits inside the border.
	need := len(m.Lines) + 2
	for y1-y0 < need {
		if y0 > 0 && (y1-y0)%2 == 0 {
			y0--
		} else {
			y1++
		}
	}
	for _, line := range m.Lines {
		for x1-x0 < len([]rune(line.Content))+2 {
			if x0 > 0 {
				x0--
			}
			x1++
		}
	}

	box := core.NewRect(x0, y0, x1-x0, y1-y0)
	dst.SetPen(core.ColorWhite, fill)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range m.Lines {
		dst.SetPen(line.Color, fill)
		n := len([]rune(line.Content))
		dst.DrawText(x0+(box.W-n)/2, y0+1+i, line.Content)
	}
}

// span returns the first and last cell indices whose centres lie in [lo, hi].
// The result is empty (first > last) when no centre is covered.
func span(lo, hi, scale float64, n int) (int, int) {
	first := int(math.Ceil(lo*scale - 0.5))
	last := int(math.Floor(hi*scale - 0.5))
	return core.Max(first, 0), core.Min(last, n-1)
}

func textRow(t Text, sy float64, rows int) int {
	return core.Clamp(int(math.Floor((t.Y-t.Size/2)*sy)), 0, rows-1)
}
