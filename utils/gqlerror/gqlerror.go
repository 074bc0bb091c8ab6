// Package gqlerror defines the error taxonomy surfaced through the GraphQL
// response. Errors are gRPC status errors so the jaal error converter emits
// the code name in the response extensions.
package gqlerror

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NotFound reports that an entity id does not exist.
func NotFound(format string, args ...interface{}) error {
	return status.Errorf(codes.NotFound, format, args...)
}

// Conflict reports a unique-constraint violation such as a duplicate email.
func Conflict(format string, args ...interface{}) error {
	return status.Errorf(codes.AlreadyExists, format, args...)
}

// Validation reports malformed or mismatched input.
func Validation(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// Unauthenticated reports an anonymous caller on an owner-only operation, or
// the deliberately generic credential failure on login.
func Unauthenticated(format string, args ...interface{}) error {
	return status.Errorf(codes.Unauthenticated, format, args...)
}

// TooManyAttempts reports a login lockout.
func TooManyAttempts(format string, args ...interface{}) error {
	return status.Errorf(codes.ResourceExhausted, format, args...)
}

// Code returns the gRPC code carried by err (codes.Unknown for plain errors).
func Code(err error) codes.Code {
	return status.Code(err)
}
