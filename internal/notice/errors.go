package notice

import "errors"

var (
	ErrNetworkFailure = errors.New("notice source unavailable")
	ErrMalformedInput = errors.New("notice sheet malformed")
)
