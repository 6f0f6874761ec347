package life

// Neighbours returns the 8 toroidal neighbour indices of the cell at the
// given row-major flat index on a height×width grid. The result is in fixed
// row-major order: top-left, top, top-right, left, right, bottom-left,
// bottom, bottom-right. Every returned index lies in [0, height*width) for
// any height, width >= 1; grids narrower than 3 in either dimension yield
// duplicate indices under the wrap.
func Neighbours(index, height, width int) [8]int {
	row := index / width
	col := index % width

	up := row - 1
	if row == 0 {
		up = height - 1
	}
	down := row + 1
	if row == height-1 {
		down = 0
	}
	left := col - 1
	if col == 0 {
		left = width - 1
	}
	right := col + 1
	if col == width-1 {
		right = 0
	}

	return [8]int{
		up*width + left, up*width + col, up*width + right,
		row*width + left, row*width + right,
		down*width + left, down*width + col, down*width + right,
	}
}

// neighbourMap precomputes the neighbour list for every cell of a
// height×width grid.
func neighbourMap(height, width int) [][8]int {
	total := height * width
	if total <= 0 {
		return nil
	}
	m := make([][8]int, total)
	for i := range m {
		m[i] = Neighbours(i, height, width)
	}
	return m
}
