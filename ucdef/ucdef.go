// Package ucdef defines use case definitions that are used across the application.
package ucdef

import "context"

// TypeUserAction tags logs and traces produced by user actions.
const TypeUserAction = "user_action"

// UserAction represents a synchronous business operation triggered by a caller.
// It is exposed through an HTTP endpoint and the caller waits for the result.
// Errors are returned directly and rendered as the HTTP error response.
//
// Type parameters:
//   - I: Input data type (request payload)
//   - O: Output data type (response, result of the operation)
//
// Examples: ListFiles, GetFileRegions, DeleteFile
type UserAction[I, O any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Execute executes the use case.
	Execute(ctx context.Context, in I) (O, error)
}
