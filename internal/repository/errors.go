package repository

import "errors"

var (
	// ErrInvalidImageURL indicates an invalid image reference
	ErrInvalidImageURL = errors.New("invalid image URL")

	// ErrAnalysisNotFound indicates the analysis result was not found
	ErrAnalysisNotFound = errors.New("analysis result not found")
)
