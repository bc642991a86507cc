package domain

import "errors"

var (
	ErrNoInput    = errors.New("no input provided")
	ErrExtraction = errors.New("feature extraction failed")
	ErrNotFound   = errors.New("media not found")
)
