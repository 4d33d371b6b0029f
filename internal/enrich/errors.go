package enrich

import "errors"

var (
	ErrNoSuitableModel = errors.New("no model supports content generation")
	ErrEmptyCandidates = errors.New("response contains no candidates")
	ErrRequestFailed   = errors.New("generative-language request failed")
)
