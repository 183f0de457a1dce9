package metric

import "errors"

// ErrUnknownMetric indicates a character metric selector outside
// {'e', 'm', 'a'}; Parse returns it.
var ErrUnknownMetric = errors.New("metric: unknown metric selector")
