package repository

import "errors"

var (
	ErrNotFound     = errors.New("entity not found")
	ErrSaveFailed   = errors.New("save failed")
	ErrDeleteFailed = errors.New("delete failed")
)
