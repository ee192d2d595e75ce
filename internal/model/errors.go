package model

import "errors"

var (
	ErrNoImage = errors.New("no image returned from OpenAI")
)
