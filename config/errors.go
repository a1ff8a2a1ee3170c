package config

import "errors"

var (
	// ErrInvalidAutocut is returned by Search.Thresholds when the
	// autocut selector is not one of the recognized spellings. Load
	// does not check the selector.
	ErrInvalidAutocut = errors.New("config: invalid autocut selector")
)
