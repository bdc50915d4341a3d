package duml

import "github.com/mattn/go-runewidth"

// Screen is the character grid the renderer draws into. The renderer
// only issues commands, it never reads drawn content back.
type Screen interface {
	Clear()
	DrawText(row, col int, text string)
	Refresh()
	Rows() int
	Cols() int
}

// Resolver maps a raw property value (a binding like "greeter.message")
// to display text. Returning "" means the raw value is used verbatim.
type Resolver func(binding string) string

// Element kinds and properties the renderer understands. Anything else
// parses fine but draws nothing.
const (
	KindWindow    = "window-root"
	KindColumn    = "layout-column"
	KindText      = "text"
	KindLabel     = "label"
	KindTextField = "text-field"
	KindButton    = "button"
)

// Render projects a document onto the screen: the window title centered
// on the first row, then the first layout column's direct children as a
// vertically spaced, horizontally centered block. Lines that do not fit
// the screen are silently dropped. A nil resolver leaves every binding
// unresolved.
func Render(document *Document, screen Screen, resolve Resolver) {
	screen.Clear()

	window := document.FirstOfKind(KindWindow)
	if window == nil {
		screen.Refresh()
		return
	}

	row := 0
	if title := resolveValue(resolve, window.Property("title", "")); title != "" {
		drawCentered(screen, row, title, 0)
		row += 2
	}

	column := window.FindKind(KindColumn)
	if column == nil {
		screen.Refresh()
		return
	}

	spacing := intOr(column.Property("spacing", "1"), 1)

	lines := make([]string, 0, len(column.Children))
	for _, child := range column.Children {
		switch child.Kind {
		case KindText, KindLabel:
			lines = append(lines, resolveValue(resolve, child.Property("text", "")))
		case KindTextField:
			content := resolveValue(resolve, child.Property("text", ""))
			if content == "" {
				content = resolveValue(resolve, child.Property("placeholder", ""))
			}
			if content == "" {
				content = " "
			}
			lines = append(lines, "[ "+content+" ]")
		case KindButton:
			label := resolveValue(resolve, child.Property("text", "Button"))
			lines = append(lines, "[ "+label+" ]")
		}
	}

	padded := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > padded {
			padded = w
		}
	}

	for _, line := range lines {
		if row >= screen.Rows() {
			break
		}

		drawCentered(screen, row, line, padded)
		row += 1 + spacing
	}

	screen.Refresh()
}

func resolveValue(resolve Resolver, value string) string {
	if resolve != nil {
		if resolved := resolve(value); resolved != "" {
			return resolved
		}
	}

	return value
}

// drawCentered centers the whole padded block on the screen, then the
// text within the block. An empty text draws nothing but the caller
// still advances past its row.
func drawCentered(screen Screen, row int, text string, padded int) {
	if text == "" {
		return
	}

	length := runewidth.StringWidth(text)
	width := length
	if padded > 0 {
		width = padded
	}

	left := (screen.Cols() - width) / 2
	if left < 0 {
		left = 0
	}

	offset := (width - length) / 2
	if offset < 0 {
		offset = 0
	}

	screen.DrawText(row, left+offset, text)
}
