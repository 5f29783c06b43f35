package catalog

import "errors"

var (
	ErrReadCatalog    = errors.New("failed to read specialization catalog")
	ErrParseCatalog   = errors.New("failed to parse specialization catalog")
	ErrEmptyCatalog   = errors.New("specialization catalog is empty")
	ErrEmptyValue     = errors.New("specialization value is empty")
	ErrDuplicateValue = errors.New("duplicate specialization value")
)
