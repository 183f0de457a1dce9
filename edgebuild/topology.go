package edgebuild

import "fmt"

// Offset is the (dx,dy,dz) forward displacement of one direction in a
// neighbor topology, exported so package segment can decode an edge
// tensor's D axis without needing anything beyond D itself — the
// direction ordering is the wire contract described in types.go.
type Offset struct {
	DX, DY, DZ int
}

// Directions returns the forward-direction table for an edge tensor with
// the given D (3 for 6-connectivity, 13 for 26-connectivity).
func Directions(d int) ([]Offset, error) {
	switch d {
	case 3:
		out := make([]Offset, 3)
		for i, dir := range dir6 {
			out[i] = Offset{DX: dir.dx, DY: dir.dy, DZ: dir.dz}
		}

		return out, nil
	case 13:
		out := make([]Offset, 13)
		for i, dir := range dir26 {
			out[i] = Offset{DX: dir.dx, DY: dir.dy, DZ: dir.dz}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("edgebuild: direction count %d: %w", d, ErrUnknownConnectivity)
	}
}

// InBounds reports whether direction dIdx's neighbor of voxel (z,y,x)
// lies inside a volume of the given dims, for an edge tensor with the
// given D.
func InBounds(d, dIdx, x, y, z, h, w, l int) bool {
	if d == 3 {
		return inBounds6(dIdx, x, y, z, h, w, l)
	}

	return inBounds26(dIdx, x, y, z, h, w, l)
}
