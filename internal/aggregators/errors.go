package aggregators

import "errors"

// ErrEmptyInput is returned by Aggregate when no record matches the customer
// and date bound.
var ErrEmptyInput = errors.New("no records to aggregate")
