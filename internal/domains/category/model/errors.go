package model

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrSlugTaken           = errors.New("slug is already in use")
	ErrCategoryNotEmpty    = errors.New("category still has subcategories or perks")
)
