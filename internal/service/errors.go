package service

import "errors"

var (
	ErrNotFound = errors.New("todo not found")
	ErrStoreNil = errors.New("todo store is nil")
)
