package file

import "errors"

var (
	ErrNoProfile    = errors.New("no profile")
	ErrAccessDenied = errors.New("access denied")
	ErrFileNotFound = errors.New("file not found")
)
