package core

// Square returns a Size with equal sides.
func Square(n int) Size {
	if n <= 0 {
		n = 1
	}
	return Size{W: n, H: n}
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside [0, W) x [0, H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the row-major slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coords is the inverse of Index.
func (s Size) Coords(i int) (int, int) {
	if s.W <= 0 {
		return 0, 0
	}
	return i % s.W, i / s.W
}

// Neighborhood lists the offsets of the eight cells around a position.
var Neighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
