package widgets

import "strings"

// Grid lays fixed-size cells out left to right, top to bottom. Offset is the
// first row drawn. CellAt uses the same geometry as Render.
type Grid struct {
	Cells      []Widget
	CellWidth  int
	CellHeight int
	Gap        int
	RowGap     int
	Offset     int
}

func (g Grid) Columns(width int) int {
	span := g.CellWidth + g.Gap
	if span <= 0 {
		return 1
	}
	return max(1, (width+g.Gap)/span)
}

func (g Grid) Rows(width int) int {
	cols := g.Columns(width)
	return (len(g.Cells) + cols - 1) / cols
}

// VisibleRows is how many whole rows fit in height.
func (g Grid) VisibleRows(height int) int {
	span := g.CellHeight + g.RowGap
	if span <= 0 {
		return 1
	}
	return max(1, (height+g.RowGap)/span)
}

func (g Grid) Render(width, height int) string {
	if len(g.Cells) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := g.Columns(width)
	rows := g.Rows(width)
	visible := g.VisibleRows(height)
	gap := strings.Repeat(" ", max(0, g.Gap))

	out := make([]string, 0, visible*(g.CellHeight+g.RowGap))
	for r := max(0, g.Offset); r < rows && r < g.Offset+visible; r++ {
		if r > g.Offset {
			for i := 0; i < g.RowGap; i++ {
				out = append(out, "")
			}
		}
		cells := make([][]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(g.Cells) {
				break
			}
			cells = append(cells, strings.Split(g.Cells[i].Render(g.CellWidth, g.CellHeight), "\n"))
		}
		for line := 0; line < g.CellHeight; line++ {
			parts := make([]string, len(cells))
			for c, cell := range cells {
				text := ""
				if line < len(cell) {
					text = cell[line]
				}
				parts[c] = padRight(text, g.CellWidth)
			}
			out = append(out, strings.Join(parts, gap))
		}
	}
	return strings.Join(out, "\n")
}

// CellAt maps a point relative to the grid's top-left corner to a cell index,
// or -1 when the point falls on a gap, outside the drawn rows or past the
// last cell.
func (g Grid) CellAt(width, height, x, y int) int {
	if x < 0 || y < 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return -1
	}
	colSpan := g.CellWidth + g.Gap
	rowSpan := g.CellHeight + g.RowGap
	col := x / colSpan
	if x%colSpan >= g.CellWidth || col >= g.Columns(width) {
		return -1
	}
	vr := y / rowSpan
	if y%rowSpan >= g.CellHeight || vr >= g.VisibleRows(height) {
		return -1
	}
	i := (g.Offset+vr)*g.Columns(width) + col
	if i >= len(g.Cells) {
		return -1
	}
	return i
}

// ScrollTo returns the offset that keeps row visible, moving as little as
// possible from the current one.
func (g Grid) ScrollTo(row, height int) int {
	visible := g.VisibleRows(height)
	offset := g.Offset
	if row < offset {
		offset = row
	}
	if row >= offset+visible {
		offset = row - visible + 1
	}
	return max(0, offset)
}
