package palette

import (
	"math"

	gart "github.com/scottkirkwood/rainbow-gart"
)

// DrawSwatches fills a w by h area with one cell per color, in rows of at
// most `rows` cells high.
func DrawSwatches(r gart.Renderer, p Palette, w, h float64, rows int) {
	if len(p.Colors) == 0 {
		return
	}
	rows = min(max(rows, 1), len(p.Colors))
	cols := int(math.Ceil(float64(len(p.Colors)) / float64(rows)))
	dx := w / float64(cols)
	dy := h / float64(rows)
	r.Push()
	r.SetStrokeColor(nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			index := y*cols + x
			if index >= len(p.Colors) {
				break
			}
			r.SetFillColor(p.Colors[index])
			r.FillRect(float64(x)*dx, float64(y)*dy, dx, dy)
		}
	}
	r.Pop()
}
