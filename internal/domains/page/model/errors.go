package model

import "errors"

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrSectionNotFound = errors.New("homepage section not found")
	ErrSlugTaken       = errors.New("page slug already in use")
)
