// Package layout provides the pure geometry used by every renderer:
// cover/contain image fitting and the fixed page and frame metrics.
package layout

import (
	"github.com/msuleman526/tripshow/pkg/pipeline"
)

// Placement is the result of fitting an image into a box: the scaled
// image size and its offset relative to the box origin. Cover fit yields
// non-positive offsets (the image overflows the box and is cropped);
// contain fit yields non-negative offsets (the image is letterboxed).
type Placement struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// CoverFit scales an image so it fully covers the box, center-cropping
// the overflow axis: scale = max(boxW/imgW, boxH/imgH).
func CoverFit(imgW, imgH, boxW, boxH float64) Placement {
	scale := boxW / imgW
	if s := boxH / imgH; s > scale {
		scale = s
	}
	return place(imgW, imgH, boxW, boxH, scale)
}

// ContainFit scales an image so it fits entirely within the box without
// exceeding its native resolution: scale = min(boxW/imgW, boxH/imgH, 1).
func ContainFit(imgW, imgH, boxW, boxH float64) Placement {
	scale := boxW / imgW
	if s := boxH / imgH; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return place(imgW, imgH, boxW, boxH, scale)
}

// Fit dispatches on the fit mode.
func Fit(mode pipeline.FitMode, imgW, imgH, boxW, boxH float64) Placement {
	if mode == pipeline.FitContain {
		return ContainFit(imgW, imgH, boxW, boxH)
	}
	return CoverFit(imgW, imgH, boxW, boxH)
}

func place(imgW, imgH, boxW, boxH, scale float64) Placement {
	w := imgW * scale
	h := imgH * scale
	return Placement{
		Width:   w,
		Height:  h,
		OffsetX: (boxW - w) / 2,
		OffsetY: (boxH - h) / 2,
		Scale:   scale,
	}
}

// PageMetrics fixes the proportions of the travel book pages: a 35%/65%
// two-column split with a uniform margin.
type PageMetrics struct {
	Width  float64
	Height float64
	Margin float64
}

// NewPageMetrics derives the metrics for one page size.
func NewPageMetrics(width, height float64) PageMetrics {
	return PageMetrics{Width: width, Height: height, Margin: 28}
}

// FullBleed is the whole page.
func (m PageMetrics) FullBleed() pipeline.Rect {
	return pipeline.Rect{X: 0, Y: 0, W: m.Width, H: m.Height}
}

// LeftColumn is the narrow info column (35% of the content width).
func (m PageMetrics) LeftColumn() pipeline.Rect {
	content := m.Width - m.Margin*2
	return pipeline.Rect{
		X: m.Margin,
		Y: m.Margin,
		W: content * 0.35,
		H: m.Height - m.Margin*2,
	}
}

// RightColumn is the wide media column (65% of the content width).
func (m PageMetrics) RightColumn() pipeline.Rect {
	content := m.Width - m.Margin*2
	left := content * 0.35
	return pipeline.Rect{
		X: m.Margin + left,
		Y: m.Margin,
		W: content - left,
		H: m.Height - m.Margin*2,
	}
}

// StatsGrid returns the 2x2 cells of the summary stats grid, row-major,
// laid out inside the given column.
func (m PageMetrics) StatsGrid(col pipeline.Rect) [4]pipeline.Rect {
	cellW := col.W / 2
	cellH := col.H * 0.18
	var cells [4]pipeline.Rect
	for i := 0; i < 4; i++ {
		row := float64(i / 2)
		c := float64(i % 2)
		cells[i] = pipeline.Rect{
			X: col.X + c*cellW,
			Y: col.Y + row*cellH,
			W: cellW,
			H: cellH,
		}
	}
	return cells
}

// FrameMetrics fixes the proportions of the vertical video frame.
type FrameMetrics struct {
	Width  int
	Height int
}

// FlagSize is the rendered size of one flag in the intro flag row and
// the per-slide flag badge, in frame pixels.
const FlagSize = 72

// FlagSpacing is the horizontal gap between flags in the intro row.
const FlagSpacing = 24

// FlagRow lays out n flags centered in a row at the given baseline y.
// Each returned value is the x of a flag's left edge.
func (m FrameMetrics) FlagRow(n int) []int {
	if n <= 0 {
		return nil
	}
	total := n*FlagSize + (n-1)*FlagSpacing
	x := (m.Width - total) / 2
	xs := make([]int, n)
	for i := range xs {
		xs[i] = x + i*(FlagSize+FlagSpacing)
	}
	return xs
}
