package tui

import (
	"github.com/csheth/heartsync/internal/layout"
)

const (
	horizontalPadding = 4
	minContentWidth   = 30
	maxContentWidth   = 96
	maxCardWidth      = 64
	fanMargin         = 2
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	contentWidth int
	cardWidth    int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(80, 24)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	content := width - horizontalPadding
	if content < minContentWidth {
		content = minContentWidth
	}
	if content > maxContentWidth {
		content = maxContentWidth
	}
	l.contentWidth = content
	l.cardWidth = content
	if l.cardWidth > maxCardWidth {
		l.cardWidth = maxCardWidth
	}
}

// textWidth is the wrap width inside a card box.
func (l pageLayout) textWidth() int {
	w := l.cardWidth - 8
	if w < 10 {
		w = 10
	}
	return w
}

type fanSlot struct {
	Index  int
	Column int
	Depth  int
	Hover  bool
}

// fan places total cards as indented rows. Columns are shifted so the
// leftmost card sits at fanMargin; depth 0 is the card furthest back.
func (l pageLayout) fan(total, hovered int, expanded bool) []fanSlot {
	if total <= 0 {
		return nil
	}
	viewport := layout.ViewportPixels(l.windowWidth)
	slots := make([]fanSlot, total)
	minCol := 0
	for i := range slots {
		tr := layout.Transform(i, total, expanded, i == hovered, viewport)
		col := tr.Column(layout.PixelsPerColumn)
		if i == 0 || col < minCol {
			minCol = col
		}
		slots[i] = fanSlot{
			Index:  i,
			Column: col,
			Depth:  layout.ZOrder(i, total, false) - 1,
			Hover:  i == hovered,
		}
	}
	for i := range slots {
		slots[i].Column = slots[i].Column - minCol + fanMargin
	}
	return slots
}
