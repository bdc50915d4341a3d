package duml

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TermScreen adapts a tcell.Screen to the renderer's Screen interface.
// The caller owns the tcell screen lifecycle (Init and Fini), which
// keeps the adapter usable with a simulation screen in tests.
type TermScreen struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewTermScreen(screen tcell.Screen) *TermScreen {
	return &TermScreen{screen: screen, style: tcell.StyleDefault}
}

func (t *TermScreen) Clear() {
	t.screen.Clear()
}

func (t *TermScreen) DrawText(row, col int, text string) {
	x := col
	for _, r := range text {
		t.screen.SetContent(x, row, r, nil, t.style)
		x += runewidth.RuneWidth(r)
	}
}

func (t *TermScreen) Refresh() {
	t.screen.Show()
}

func (t *TermScreen) Rows() int {
	_, height := t.screen.Size()
	return height
}

func (t *TermScreen) Cols() int {
	width, _ := t.screen.Size()
	return width
}
