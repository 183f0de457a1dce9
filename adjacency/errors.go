package adjacency

import "errors"

// ErrNilLabelVolume indicates Adjacency was called with a nil label volume.
var ErrNilLabelVolume = errors.New("adjacency: nil label volume")
