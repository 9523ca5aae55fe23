package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformMatchesStylesheet(t *testing.T) {
	cases := []struct {
		name                string
		index, total, width int
		expanded, focused   bool
		want                string
	}{
		{
			name: "desktop collapsed first", index: 0, total: 10, width: 1280,
			want: "rotateY(-30deg) rotateX(10deg) translateZ(180px) translateX(-74px) translateY(25px)",
		},
		{
			name: "desktop expanded focused", index: 3, total: 10, width: 1280, expanded: true, focused: true,
			want: "rotateY(-30deg) rotateX(10deg) translateZ(120px) translateX(-122.5px) translateY(-40px)",
		},
		{
			name: "mobile collapsed last", index: 8, total: 9, width: 375,
			want: "rotateY(-30deg) rotateX(10deg) translateZ(-160px) translateX(22px) translateY(-17.5px)",
		},
		{
			name: "single card", index: 0, total: 1, width: 1280,
			want: "rotateY(-30deg) rotateX(10deg) translateZ(0px) translateX(-20px) translateY(2.5px)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Transform(tc.index, tc.total, tc.expanded, tc.focused, tc.width).CSS()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransformIsFiniteForEveryIndex(t *testing.T) {
	for total := 1; total <= 10; total++ {
		for _, width := range []int{320, MobileBreakpoint, 1920} {
			for _, expanded := range []bool{false, true} {
				prevX := math.Inf(-1)
				prevZ := math.Inf(1)
				for i := 0; i < total; i++ {
					tr := Transform(i, total, expanded, false, width)
					for _, v := range []float64{tr.X, tr.Y, tr.Z} {
						assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
					}
					assert.Greater(t, tr.X, prevX, "cards fan left to right")
					assert.Less(t, tr.Z, prevZ, "later cards sit further back")
					prevX, prevZ = tr.X, tr.Z
				}
			}
		}
	}
}

func TestFocusLiftsCard(t *testing.T) {
	rest := Transform(2, 5, false, false, 1280)
	lifted := Transform(2, 5, false, true, 1280)
	assert.Equal(t, rest.Y-50, lifted.Y)
	assert.Equal(t, rest.X, lifted.X)

	mobile := Transform(2, 5, false, true, 320)
	assert.Equal(t, Transform(2, 5, false, false, 320).Y-30, mobile.Y)
}

func TestProjection(t *testing.T) {
	tr := Transform3D{X: -74, Y: 25}
	assert.Equal(t, -9, tr.Column(PixelsPerColumn))
	assert.Equal(t, 2, tr.Row(16))
	assert.Zero(t, tr.Column(0))
	assert.Equal(t, 640, ViewportPixels(80))
}

func TestZOrder(t *testing.T) {
	assert.Equal(t, 10, ZOrder(0, 10, false))
	assert.Equal(t, 1, ZOrder(9, 10, false))
	assert.Equal(t, HoverZIndex, ZOrder(9, 10, true))
}
