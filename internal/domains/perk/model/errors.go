package model

import "errors"

var (
	ErrPerkNotFound = errors.New("perk not found")
	ErrSlugTaken    = errors.New("slug is already in use")
)
