package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	for y := 0; y < s.Height(); y++ {
		assert.Equal(t, strings.Repeat(" ", 80), s.Row(y), "row %d", y)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
	assert.Equal(t, strings.Repeat(" ", 10), s.Row(0))
}

func TestScreenPenColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetPen(ColorBall, ColorBackground)
	s.Clear()

	c := s.GetCell(1, 1)
	assert.Equal(t, ColorBall, c.FG, "Clear uses the pen foreground")
	assert.Equal(t, ColorBackground, c.BG, "Clear uses the pen background")

	s.SetPen(ColorWhite, ColorBlack)
	s.Set(1, 1, 'o')
	c = s.GetCell(1, 1)
	assert.Equal(t, 'o', c.Rune)
	assert.Equal(t, ColorWhite, c.FG)
	assert.Equal(t, ColorBackground, c.BG, "Set keeps the background")
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(3, 3)
	want := Cell{Rune: '█', FG: ColorPaddle, BG: ColorBlack}
	s.SetCell(2, 2, want)
	assert.Equal(t, want, s.GetCell(2, 2))

	assert.NotPanics(t, func() { s.SetCell(3, 3, want) })
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello             ", s.Row(1))

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		assert.Equal(t, "  ###     ", s.Row(y), "row %d", y)
	}
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	expected := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}, "\n")
	assert.Equal(t, expected, s.String())
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "content kept after shrinking")

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "content kept after enlarging")
	assert.Equal(t, strings.Repeat(" ", 15), s.Row(5), "rows cut by the shrink stay blank")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	assert.Equal(t, "Test      ", s.Row(2))
	assert.Equal(t, "          ", s.Row(-1), "out of bounds row is blank")
}
