package domain

import "errors"

var (
	ErrPetNotFound      = errors.New("pet not found or access denied")
	ErrTemplateNotFound = errors.New("activity template not found")
	ErrNothingExtended  = errors.New("no continuation activities created")
	ErrPromptNotFound   = errors.New("extension prompt not found")
	ErrRecordNotFound   = errors.New("notification record not found")
)
