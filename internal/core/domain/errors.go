package domain

import "errors"

var (
	// ErrInvalidSpec marks a challenge spec that is missing required fields.
	ErrInvalidSpec = errors.New("invalid challenge spec")

	// ErrAlreadyExists is returned by cluster adapters when the API server answers 409.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrNotFound is returned by cluster adapters when the API server answers 404.
	ErrNotFound = errors.New("resource not found")

	ErrRenderingNotFound = errors.New("stored rendering not found")

	// ErrAlreadyDeployed aborts a replay apply that hit an existing object.
	ErrAlreadyDeployed = errors.New("resource already exists, undeploy first")
)
