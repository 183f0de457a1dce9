package geometry

import "errors"

// ErrNilLabelVolume indicates Components was called with a nil label
// volume.
var ErrNilLabelVolume = errors.New("geometry: nil label volume")

// ErrEmptyGrid indicates ComponentsFrom2D was called with no rows or no
// columns, mirroring gridgraph.ErrEmptyGrid's guard for the analogous
// 2D-slice entry point.
var ErrEmptyGrid = errors.New("geometry: input grid must have at least one row and one column")

// ErrNonRectangular indicates ComponentsFrom2D rows of differing
// lengths, mirroring gridgraph.ErrNonRectangular.
var ErrNonRectangular = errors.New("geometry: all rows must have the same length")
