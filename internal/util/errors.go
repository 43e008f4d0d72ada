package util

import "errors"

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCompanyRequired    = errors.New("companyId is required")
	ErrUpstreamFetch      = errors.New("failed to fetch assignments")
	ErrInvalidFilter      = errors.New("invalid report filter")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrLessonOutOfRange   = errors.New("lesson count exceeds course lessons")
)
