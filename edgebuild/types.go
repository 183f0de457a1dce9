package edgebuild

// Connectivity selects the neighbor topology used to build the edge
// tensor: Conn6 is axis-aligned 6-connectivity (D=3 forward directions),
// Conn26 is full 3x3x3-cube connectivity (D=13 forward directions).
type Connectivity int

const (
	// Conn6 is 6-connectivity: +x, +y, +z.
	Conn6 Connectivity = 6
	// Conn26 is 26-connectivity: the 13 forward directions of dir26.
	Conn26 Connectivity = 26
)

// direction is a single forward offset in the 26-connectivity cube. The
// bounds guard for each direction lives in inBounds6 / inBounds26.
type direction struct {
	dx, dy, dz int
}

// dir6 is the 6-connectivity forward direction table, d=0..2. This
// ordering is part of the wire contract with package segment, which
// decodes edges from the tensor without any side channel describing the
// layout — see Builder.Build and package segment's materializeEdges.
var dir6 = [3]direction{
	{dx: 1, dy: 0, dz: 0},
	{dx: 0, dy: 1, dz: 0},
	{dx: 0, dy: 0, dz: 1},
}

// dir26 is the 26-connectivity forward direction table, d=0..12, in the
// exact order spec'd: each undirected edge of the 3x3x3 cube is stored
// from exactly one of its two endpoints.
var dir26 = [13]direction{
	{dx: 1, dy: 0, dz: 0},
	{dx: 0, dy: 1, dz: 0},
	{dx: 1, dy: 1, dz: 0},
	{dx: 1, dy: -1, dz: 0},
	{dx: 0, dy: 0, dz: 1},
	{dx: 1, dy: 0, dz: 1},
	{dx: 0, dy: 1, dz: 1},
	{dx: 1, dy: 1, dz: 1},
	{dx: 1, dy: -1, dz: 1},
	{dx: -1, dy: 0, dz: 1},
	{dx: 0, dy: -1, dz: 1},
	{dx: -1, dy: -1, dz: 1},
	{dx: -1, dy: 1, dz: 1},
}

// inBounds6 reports whether the d-th 6-connectivity direction's neighbor
// of voxel (z,y,x) lies inside a volume of the given dims.
func inBounds6(d, x, y, z, h, w, l int) bool {
	switch d {
	case 0:
		return x < w-1
	case 1:
		return y < h-1
	case 2:
		return z < l-1
	default:
		return false
	}
}

// inBounds26 reports whether the d-th 26-connectivity direction's
// neighbor of voxel (z,y,x) lies inside a volume of the given dims. The
// guards mirror the original source's nested-if structure exactly:
// directions 5-12 are only ever considered when z < l-1 holds (d=4's
// guard), since they all carry dz=+1.
func inBounds26(d, x, y, z, h, w, l int) bool {
	switch d {
	case 0:
		return x < w-1
	case 1:
		return y < h-1
	case 2:
		return x < w-1 && y < h-1
	case 3:
		return x < w-1 && y > 0
	case 4:
		return z < l-1
	case 5:
		return z < l-1 && x < w-1
	case 6:
		return z < l-1 && y < h-1
	case 7:
		return z < l-1 && x < w-1 && y < h-1
	case 8:
		return z < l-1 && x < w-1 && y > 0
	case 9:
		return z < l-1 && x > 0
	case 10:
		return z < l-1 && y > 0
	case 11:
		return z < l-1 && x > 0 && y > 0
	case 12:
		return z < l-1 && y < h-1 && x > 0
	default:
		return false
	}
}
