// Package layout computes where each card of the gallery fan sits.
//
// The geometry is expressed in CSS pixels so it can be rendered as a CSS
// transform string or projected onto terminal columns.
package layout

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MobileBreakpoint is the viewport width, in CSS pixels, below which the
	// compact geometry applies.
	MobileBreakpoint = 640
	// PixelsPerColumn converts terminal columns to CSS pixels.
	PixelsPerColumn = 8

	// HoverZIndex keeps the hovered card above every other card.
	HoverZIndex = 100

	baseRotation = "rotateY(-30deg) rotateX(10deg)"
)

// Transform3D is the placement of one card.
type Transform3D struct {
	RotateY float64
	RotateX float64
	X       float64
	Y       float64
	Z       float64
}

// Transform returns the placement of card index in a fan of total cards.
// expanded selects the wide fan; focused lifts the card.
func Transform(index, total int, expanded, focused bool, viewportWidth int) Transform3D {
	mobile := viewportWidth < MobileBreakpoint

	lift := 0.0
	if focused {
		lift = pick(mobile, -30, -50)
	}
	var spacing, nudge, zStep float64
	if expanded {
		spacing = pick(mobile, 28, 55)
		nudge = pick(mobile, -20, -40)
		zStep = -80
	} else {
		spacing = pick(mobile, 8, 12)
		nudge = pick(mobile, -10, -20)
		zStep = -40
	}

	i := float64(index)
	n := float64(total)
	startX := -((n - 1) * spacing) / 2
	return Transform3D{
		RotateY: -30,
		RotateX: 10,
		X:       startX + i*spacing + nudge,
		Y:       i*-5 + n/2*5 + lift,
		Z:       i*zStep - (n-1)*zStep/2,
	}
}

// ViewportPixels converts a terminal width to CSS pixels.
func ViewportPixels(columns int) int {
	return columns * PixelsPerColumn
}

// CSS renders the transform the way a browser stylesheet expects it.
func (t Transform3D) CSS() string {
	return fmt.Sprintf("%s translateZ(%spx) translateX(%spx) translateY(%spx)",
		baseRotation, num(t.Z), num(t.X), num(t.Y))
}

// Column projects X onto a terminal column offset, pixelsPerColumn pixels wide.
func (t Transform3D) Column(pixelsPerColumn float64) int {
	return project(t.X, pixelsPerColumn)
}

// Row projects Y onto a terminal row offset.
func (t Transform3D) Row(pixelsPerRow float64) int {
	return project(t.Y, pixelsPerRow)
}

// ZOrder is the stacking index: the hovered card on top, then front to back.
func ZOrder(index, total int, hovered bool) int {
	if hovered {
		return HoverZIndex
	}
	return total - index
}

func project(v, scale float64) int {
	if scale <= 0 {
		return 0
	}
	return int(math.Round(v / scale))
}

func pick(mobile bool, small, large float64) float64 {
	if mobile {
		return small
	}
	return large
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
