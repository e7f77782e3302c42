package repository

import "errors"

var (
	ErrRedisConnection   = errors.New("redis connection error")
	ErrInvalidPromptData = errors.New("invalid prompt data")
	ErrInvalidRecordData = errors.New("invalid notification record data")
)
