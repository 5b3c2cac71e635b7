package fakevault

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidFilter      = errors.New("invalid filter value")
	ErrAttachmentNotFound = errors.New("attachment not found")
)
