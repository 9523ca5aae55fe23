package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name         string
		width        int
		height       int
		contentWidth int
		cardWidth    int
	}{
		{name: "tiny", width: 20, height: 10, contentWidth: 30, cardWidth: 30},
		{name: "narrow", width: 60, height: 24, contentWidth: 56, cardWidth: 56},
		{name: "wide", width: 200, height: 40, contentWidth: 96, cardWidth: 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.contentWidth != tc.contentWidth {
				t.Fatalf("content width mismatch: got %d want %d", layout.contentWidth, tc.contentWidth)
			}
			if layout.cardWidth != tc.cardWidth {
				t.Fatalf("card width mismatch: got %d want %d", layout.cardWidth, tc.cardWidth)
			}
		})
	}
}

func TestFanSpreadsWhenExpanded(t *testing.T) {
	l := newPageLayout()
	l.Update(120, 32)

	collapsed := l.fan(10, -1, false)
	expanded := l.fan(10, -1, true)
	if len(collapsed) != 10 || len(expanded) != 10 {
		t.Fatalf("expected 10 slots, got %d and %d", len(collapsed), len(expanded))
	}
	if collapsed[0].Column != fanMargin || expanded[0].Column != fanMargin {
		t.Fatalf("first card should sit at the margin: %d / %d", collapsed[0].Column, expanded[0].Column)
	}
	spanCollapsed := collapsed[9].Column - collapsed[0].Column
	spanExpanded := expanded[9].Column - expanded[0].Column
	if spanExpanded <= spanCollapsed {
		t.Fatalf("expanded fan should be wider: collapsed=%d expanded=%d", spanCollapsed, spanExpanded)
	}
	if collapsed[0].Depth != 9 || collapsed[9].Depth != 0 {
		t.Fatalf("unexpected depth ordering: front=%d back=%d", collapsed[0].Depth, collapsed[9].Depth)
	}
}

func TestFanMarksHover(t *testing.T) {
	l := newPageLayout()
	slots := l.fan(3, 1, false)
	for _, slot := range slots {
		if slot.Hover != (slot.Index == 1) {
			t.Fatalf("slot %d hover=%v", slot.Index, slot.Hover)
		}
	}
	if l.fan(0, -1, false) != nil {
		t.Fatal("empty deck should produce no slots")
	}
}
