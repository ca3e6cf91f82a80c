package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that rejects the operation,
// e.g. deleting a user that still owns expense records.
var ErrConflict = errors.New("operation conflicts with resource state")
