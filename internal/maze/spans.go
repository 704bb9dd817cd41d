package maze

// Span is an inclusive column range of open tiles inside one row.
type Span struct{ Start, End int }

// RowSpans groups the contiguous open runs of a single row.
type RowSpans struct {
	Y     int
	Spans []Span
}

// OpenSpans returns the open runs of every row in [y0, y1], clipped to
// columns [x0, x1]. Rows without passages are omitted.
func (g *Grid) OpenSpans(x0, y0, x1, y1 int) []RowSpans {
	x0 = clampCoord(x0, 0, g.width-1)
	x1 = clampCoord(x1, 0, g.width-1)
	y0 = clampCoord(y0, 0, g.height-1)
	y1 = clampCoord(y1, 0, g.height-1)
	rows := make([]RowSpans, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		base := y * g.width
		var spans []Span
		in := false
		start := 0
		for x := x0; x <= x1; x++ {
			open := g.cells[base+x] == Open
			if open && !in {
				in = true
				start = x
			}
			if in && (!open || x == x1) {
				end := x - 1
				if open {
					end = x
				}
				spans = append(spans, Span{Start: start, End: end})
				in = false
			}
		}
		if len(spans) == 0 {
			continue
		}
		rows = append(rows, RowSpans{Y: y, Spans: spans})
	}
	return rows
}
