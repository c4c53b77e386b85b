package apperrors

import "errors"

// ErrNotFound indicates that a requested resource (or one of its ancestors
// in the ownership chain) could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the actor may not act on the target entity.
// Chain checks that cannot resolve an ancestor also resolve to this error:
// access is fail-closed, never "unknown".
var ErrForbidden = errors.New("access denied")

// ErrUnauthorized indicates that no valid identity was presented.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream indicates that an external collaborator (e.g. the
// text-generation provider) failed or returned an unusable response.
var ErrUpstream = errors.New("upstream failure")
