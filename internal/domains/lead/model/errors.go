package model

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
)
