package upload

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported type")
	ErrInvalidUploadLink  = errors.New("invalid upload link")
	ErrUploadFailed       = errors.New("upload failed")
	ErrRegistrationFailed = errors.New("registration failed")
)
