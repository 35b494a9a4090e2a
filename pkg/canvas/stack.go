package canvas

// FromString returns a one-row canvas holding line.
func FromString(line string) *Canvas {
	runes := []rune(line)
	c := New(len(runes), 1)
	copy(c.cells[0], runes)
	return c
}

// Stack places canvases below each other. The result is as wide as the
// widest input and as tall as all inputs together; narrower rows are padded
// with blanks on the right.
func Stack(parts ...*Canvas) *Canvas {
	width, height := 0, 0
	for _, p := range parts {
		width = max(width, p.width)
		height += p.height
	}

	out := New(width, height)
	y := 0
	for _, p := range parts {
		for _, row := range p.cells {
			copy(out.cells[y], row)
			y++
		}
	}
	return out
}

// Beside places canvases next to each other with gap blank columns between
// them. The result is as tall as the tallest input.
func Beside(gap int, parts ...*Canvas) *Canvas {
	width, height := 0, 0
	for i, p := range parts {
		if i > 0 {
			width += gap
		}
		width += p.width
		height = max(height, p.height)
	}

	out := New(width, height)
	x := 0
	for i, p := range parts {
		if i > 0 {
			x += gap
		}
		for y, row := range p.cells {
			copy(out.cells[y][x:], row)
		}
		x += p.width
	}
	return out
}
