package edgebuild

import "errors"

// ErrUnknownConnectivity indicates a connectivity selector outside {6, 26}
// for Builder, or anything other than 6 for FlowBuilder (flow warping is
// only defined for the 6-connectivity temporal edge).
var ErrUnknownConnectivity = errors.New("edgebuild: unknown connectivity")
