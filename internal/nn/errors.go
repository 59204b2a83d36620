package nn

import "errors"

// ErrUnknownFunction is returned when an activation or loss name is not recognized.
var ErrUnknownFunction = errors.New("nn: unknown function")

// ErrInvalidLearnRate is returned for a negative or non-finite learning rate.
var ErrInvalidLearnRate = errors.New("nn: invalid learning rate")
