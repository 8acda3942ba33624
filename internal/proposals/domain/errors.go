package domain

import "errors"

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrInvalidStatus    = errors.New("invalid proposal status")
)
