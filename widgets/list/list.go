package list

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/ternui/tern"
)

// List is a vertically scrolling selection list. Navigation clamps at
// both ends: there is no wraparound.
type List struct {
	// Style is applied to unselected items.
	Style tcell.Style
	// SelectedStyle is applied to the selected item.
	SelectedStyle tcell.Style
	// Prefix, if set, is drawn before the selected item; other items are
	// indented by its width.
	Prefix string

	items  []string
	index  int
	offset int
}

func New(items []string) List {
	return List{
		SelectedStyle: tcell.StyleDefault.Reverse(true),
		items:         items,
	}
}

// Draw renders the visible slice of the list into win, keeping the
// selected item in view.
func (l *List) Draw(win tern.Window) {
	_, height := win.Size()
	if height <= 0 || len(l.items) == 0 {
		return
	}
	if l.index >= l.offset+height {
		l.offset = l.index - height + 1
	} else if l.index < l.offset {
		l.offset = l.index
	}

	pad := ""
	for i := 0; i < uniseg.StringWidth(l.Prefix); i += 1 {
		pad += " "
	}

	for i, item := range l.items[l.offset:] {
		if i >= height {
			break
		}
		if i+l.offset == l.index {
			win.Println(i, tern.Segment{Text: l.Prefix + item, Style: l.SelectedStyle})
			continue
		}
		win.Println(i, tern.Segment{Text: pad + item, Style: l.Style})
	}
}

// Down moves the selection toward the end of the list.
func (l *List) Down() {
	l.index = max(0, min(len(l.items)-1, l.index+1))
}

// Up moves the selection toward the start of the list.
func (l *List) Up() {
	l.index = max(0, l.index-1)
}

// Home moves the selection to the first item.
func (l *List) Home() {
	l.index = 0
}

// End moves the selection to the last item.
func (l *List) End() {
	l.index = max(0, len(l.items)-1)
}

func (l *List) SetItems(items []string) {
	l.items = items
	l.index = max(0, min(len(items)-1, l.index))
}

// Index returns the index of the currently selected item.
func (l *List) Index() int {
	return l.index
}

// Selected returns the currently selected item, or "" for an empty list.
func (l *List) Selected() string {
	if l.index < 0 || l.index >= len(l.items) {
		return ""
	}
	return l.items[l.index]
}
