package models

import "errors"

var (
	ErrResourceNotFound = errors.New("the requested resource could not be found")
	ErrResourceExists   = errors.New("the requested resource already exists")
	ErrDeserialize      = errors.New("could not deserialize record")
)
