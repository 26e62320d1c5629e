package contract

import "errors"

// Sentinel errors shared by the fetch, storage and transport layers.
var (
	ErrUserNotFound    = errors.New("github user not found")
	ErrRateLimited     = errors.New("github rate limit exceeded")
	ErrInvalidUsername = errors.New("invalid github username")
	ErrStorage         = errors.New("storage failure")
	ErrCacheMiss       = errors.New("cache miss")
	ErrLLMUnavailable  = errors.New("llm provider unavailable")
	ErrReportNotFound  = errors.New("no stored report")
)
