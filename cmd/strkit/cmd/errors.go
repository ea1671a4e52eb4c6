package cmd

import "errors"

var (
	ErrUnknownSpec      = errors.New("unknown format spec")
	ErrUnknownRule      = errors.New("unknown number rule")
	ErrMissingRules     = errors.New("no rules file given")
	ErrMissingLocale    = errors.New("no locale given")
	ErrInvalidMaskChar  = errors.New("mask character must be a single rune")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrNoInput          = errors.New("no input")
)
