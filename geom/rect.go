package geom

import "fmt"

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is a rectangle described by its origin and its size. The size
// is stored as given rather than derived from a far corner, so a
// width or height always reads back exactly as it was set. A Rect is
// not required to be well-formed: either component of Size may be
// negative.
type Rect[T Scalar] struct {
	Origin, Size Point[T]
}

// Rt returns the rectangle with corners (x0, y0) and (x1, y1). The
// result is not canonicalized.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Origin: Pt(x0, y0), Size: Pt(x1-x0, y1-y0)}
}

// XYWH returns the rectangle with its origin at (x, y) and the given
// width and height.
func XYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Origin: Pt(x, y), Size: Pt(w, h)}
}

func (r Rect[T]) String() string {
	return r.Origin.String() + "+" + r.Size.String()
}

// X returns the x coordinate of the origin.
func (r Rect[T]) X() T { return r.Origin.X }

// Y returns the y coordinate of the origin.
func (r Rect[T]) Y() T { return r.Origin.Y }

// MaxX returns the x coordinate of the far edge, X()+Dx().
func (r Rect[T]) MaxX() T { return r.Origin.X + r.Size.X }

// MaxY returns the y coordinate of the far edge, Y()+Dy().
func (r Rect[T]) MaxY() T { return r.Origin.Y + r.Size.Y }

// Dx returns r's width.
func (r Rect[T]) Dx() T { return r.Size.X }

// Dy returns r's height.
func (r Rect[T]) Dy() T { return r.Size.Y }

// Max returns the far corner of r.
func (r Rect[T]) Max() Point[T] {
	return r.Origin.Add(r.Size)
}

// Empty reports whether r contains no area.
func (r Rect[T]) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Canon returns the canonical version of r, with the origin moved to
// the least corner so that both components of Size are non-negative.
func (r Rect[T]) Canon() Rect[T] {
	if r.Size.X < 0 {
		r.Origin.X += r.Size.X
		r.Size.X = -r.Size.X
	}
	if r.Size.Y < 0 {
		r.Origin.Y += r.Size.Y
		r.Size.Y = -r.Size.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin.Add(p), Size: r.Size}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin.Sub(p), Size: r.Size}
}

// Resize returns r with its origin unchanged and its size set to
// size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin, Size: size}
}

// In reports whether p lies within r. The origin edges are inclusive
// and the far edges are exclusive, as with image.Point.In.
func (p Point[T]) In(r Rect[T]) bool {
	return r.X() <= p.X && p.X < r.MaxX() &&
		r.Y() <= p.Y && p.Y < r.MaxY()
}
