package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Band returns the strip of r that is size thick and runs along the
// given edge, spanning r's full width or height. For example, the
// band along EdgeRight starts size units before r's right edge and
// has the same height as r. The band's thickness is exactly size.
//
// The second return value is false if edge is not exactly one of
// EdgeTop, EdgeBottom, EdgeLeft or EdgeRight.
func Band[T Scalar](r Rect[T], edge Edges, size T) (Rect[T], bool) {
	switch edge {
	case EdgeTop:
		return XYWH(r.X(), r.Y(), r.Dx(), size), true
	case EdgeBottom:
		return XYWH(r.X(), r.MaxY()-size, r.Dx(), size), true
	case EdgeLeft:
		return XYWH(r.X(), r.Y(), size, r.Dy()), true
	case EdgeRight:
		return XYWH(r.MaxX()-size, r.Y(), size, r.Dy()), true
	default:
		return Rect[T]{}, false
	}
}

// Stacked yields n panels of equal height that divide r from top to
// bottom, as for plots that share a horizontal axis.
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
func Stacked[T Scalar](n int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if n <= 0 {
			return
		}

		h := r.Dy() / T(n)
		for i := range n {
			if !yield(XYWH(r.X(), r.Y()+T(i)*h, r.Dx(), h)) {
				return
			}
		}
	}
}

// Columns yields n panels of equal width that divide r from left to
// right, as for plots that share a vertical axis.
//
//	----------
//	|  |  |  |
//	----------
func Columns[T Scalar](n int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if n <= 0 {
			return
		}

		w := r.Dx() / T(n)
		for i := range n {
			if !yield(XYWH(r.X()+T(i)*w, r.Y(), w, r.Dy())) {
				return
			}
		}
	}
}

// Grid yields n panels arranged in rows of at most cols panels each.
// Every row has the same height; a final, partly filled row divides
// its width among the panels it holds. A cols value less than one is
// treated as one.
func Grid[T Scalar](n int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if n <= 0 {
			return
		}
		cols = max(cols, 1)

		left := n
		for row := range Stacked((n+cols-1)/cols, r) {
			for panel := range Columns(min(left, cols), row) {
				if !yield(panel) {
					return
				}
			}
			left -= cols
		}
	}
}

// Tile stores successive rectangles from seq into tiles, stopping
// when either runs out. It returns the number stored.
func Tile[T Scalar](tiles []Rect[T], seq iter.Seq[Rect[T]]) int {
	var n int
	for i, t := range xiter.Enumerate(seq) {
		if i >= len(tiles) {
			break
		}
		tiles[i] = t
		n++
	}
	return n
}
