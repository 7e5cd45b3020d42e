package domain

import "errors"

var (
	ErrDuplicateCommand   = errors.New("duplicate command")
	ErrDuplicateHandler   = errors.New("duplicate handler")
	ErrParameterUnderflow = errors.New("not enough parameters")
	ErrParameterMismatch  = errors.New("unexpected number of parameters")
	ErrContextBinding     = errors.New("cannot bind context to handler")
	ErrResolution         = errors.New("cannot resolve handler instance")
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptyPrompt        = errors.New("empty prompt")
)
