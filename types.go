package rowan

// Color represents an RGBA color with 8-bit components. Not premultiplied;
// tinting is applied at draw submission as a per-channel multiply.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
	Blank     = Color{0, 0, 0, 0}
	Red       = Color{230, 41, 55, 255}
	Green     = Color{0, 228, 48, 255}
	Blue      = Color{0, 121, 241, 255}
	Yellow    = Color{253, 249, 0, 255}
	Magenta   = Color{255, 0, 255, 255}
	DarkGray  = Color{80, 80, 80, 255}
	LightGray = Color{200, 200, 200, 255}
)

// Vector2 is a 2D vector used for positions, offsets, and origins.
type Vector2 struct {
	X, Y float32
}

// Rectangle is an axis-aligned rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rectangle) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// NPatchLayout selects how an n-patch source is subdivided.
type NPatchLayout uint8

const (
	NPatchNinePatch            NPatchLayout = iota // 3x3 grid, all borders
	NPatchThreePatchHorizontal                     // 1x3 row, left/right borders
	NPatchThreePatchVertical                       // 3x1 column, top/bottom borders
)

// NPatchInfo describes an n-patch subdivision of a texture region. The
// border fields give the widths of the non-stretched edge regions in
// source pixels.
type NPatchInfo struct {
	Source Rectangle // region of the texture to subdivide
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
	Layout NPatchLayout
}
