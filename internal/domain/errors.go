package domain

import "errors"

// Domain errors.
var (
	ErrLineFormat        = errors.New("task line does not match base format")
	ErrStoreRecord       = errors.New("store record cannot be decoded")
	ErrStoreNotFound     = errors.New("store file not found")
	ErrUnsupportedFormat = errors.New("unsupported conversion format")
	ErrInPlaceStdin      = errors.New("--in-place requires a named input file, not stdin")
	ErrInPlaceOutput     = errors.New("--in-place cannot be used with --output")
	ErrApplyInputFormat  = errors.New("--from must be 'markdown' for apply")
)
