package model

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("post slug already in use")
)
