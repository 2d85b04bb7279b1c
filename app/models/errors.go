package models

import "errors"

var (
	ErrInvalidTier  = errors.New("invalid subscription tier")
	ErrInvalidPrice = errors.New("plan price must be greater than zero")
	ErrPostAuthor   = errors.New("post needs exactly one of admin or super-admin author")
)
