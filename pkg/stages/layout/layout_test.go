package layout

import (
	"math"
	"testing"
)

func TestCoverFit_CoversBox(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH float64
		boxW, boxH float64
	}{
		{"wide image into square box", 1600, 900, 500, 500},
		{"tall image into wide box", 900, 1600, 800, 400},
		{"small image upscaled", 100, 80, 640, 480},
		{"exact match", 512, 512, 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CoverFit(tt.imgW, tt.imgH, tt.boxW, tt.boxH)

			if p.Width < tt.boxW-1e-9 || p.Height < tt.boxH-1e-9 {
				t.Errorf("result %gx%g does not cover box %gx%g",
					p.Width, p.Height, tt.boxW, tt.boxH)
			}
			if got := (tt.boxW - p.Width) / 2; math.Abs(p.OffsetX-got) > 1e-9 {
				t.Errorf("offsetX: expected %g, got %g", got, p.OffsetX)
			}
			if got := (tt.boxH - p.Height) / 2; math.Abs(p.OffsetY-got) > 1e-9 {
				t.Errorf("offsetY: expected %g, got %g", got, p.OffsetY)
			}
		})
	}
}

func TestContainFit_FitsBox(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH float64
		boxW, boxH float64
	}{
		{"wide image into square box", 1600, 900, 500, 500},
		{"tall image into wide box", 900, 1600, 800, 400},
		{"small image stays native", 100, 80, 640, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ContainFit(tt.imgW, tt.imgH, tt.boxW, tt.boxH)

			if p.Width > tt.boxW+1e-9 || p.Height > tt.boxH+1e-9 {
				t.Errorf("result %gx%g exceeds box %gx%g",
					p.Width, p.Height, tt.boxW, tt.boxH)
			}
			if p.Scale > 1+1e-9 {
				t.Errorf("contain fit upscaled beyond native resolution: scale %g", p.Scale)
			}
			if got := (tt.boxW - p.Width) / 2; math.Abs(p.OffsetX-got) > 1e-9 {
				t.Errorf("offsetX: expected %g, got %g", got, p.OffsetX)
			}
			if got := (tt.boxH - p.Height) / 2; math.Abs(p.OffsetY-got) > 1e-9 {
				t.Errorf("offsetY: expected %g, got %g", got, p.OffsetY)
			}
		})
	}
}

func TestContainFit_NeverUpscales(t *testing.T) {
	p := ContainFit(100, 80, 640, 480)

	if p.Width != 100 || p.Height != 80 {
		t.Errorf("expected native 100x80, got %gx%g", p.Width, p.Height)
	}
	if p.OffsetX != 270 || p.OffsetY != 200 {
		t.Errorf("expected centered offsets 270,200, got %g,%g", p.OffsetX, p.OffsetY)
	}
}

func TestColumns_SplitProportions(t *testing.T) {
	m := NewPageMetrics(595, 842)

	left := m.LeftColumn()
	right := m.RightColumn()

	content := 595 - m.Margin*2
	if math.Abs(left.W-content*0.35) > 1e-9 {
		t.Errorf("left column width: expected %g, got %g", content*0.35, left.W)
	}
	if math.Abs(left.W+right.W-content) > 1e-9 {
		t.Errorf("columns do not span content width: %g + %g != %g", left.W, right.W, content)
	}
	if math.Abs(right.X-(left.X+left.W)) > 1e-9 {
		t.Errorf("right column does not start where left ends")
	}
}

func TestFlagRow_Centered(t *testing.T) {
	m := FrameMetrics{Width: 1080, Height: 1920}

	xs := m.FlagRow(3)

	if len(xs) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(xs))
	}
	total := 3*FlagSize + 2*FlagSpacing
	wantFirst := (1080 - total) / 2
	if xs[0] != wantFirst {
		t.Errorf("first flag x: expected %d, got %d", wantFirst, xs[0])
	}
	for i := 1; i < 3; i++ {
		if xs[i]-xs[i-1] != FlagSize+FlagSpacing {
			t.Errorf("uneven flag spacing between %d and %d", i-1, i)
		}
	}
	if m.Width-(xs[2]+FlagSize) != xs[0] {
		t.Errorf("flag row is not centered: left gap %d, right gap %d",
			xs[0], m.Width-(xs[2]+FlagSize))
	}
}
