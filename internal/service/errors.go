package service

import "errors"

var (
	// ErrInvalidTask rejects tasks without a positive duration before any
	// block is emitted.
	ErrInvalidTask = errors.New("task needs a positive duration")
	// ErrInvalidDecision rejects decisions without a context, options or a
	// selected option.
	ErrInvalidDecision = errors.New("decision needs a context, options and a selection")
	// ErrModuleNotFound means the module id is not part of the curriculum.
	ErrModuleNotFound = errors.New("unknown curriculum module")
	// ErrModuleNotStarted means completion was attempted before a start.
	ErrModuleNotStarted = errors.New("module was never started")
	// ErrInvalidScore rejects assessment scores outside [0,100].
	ErrInvalidScore = errors.New("assessment score outside [0,100]")
)
