// Package errs provides standardized error types for the logistics engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ConflictError: For when an object is already in a terminal state
//   - StorageFailureError: For authoritative store I/O failures
//   - UnexpectedError: For malformed cache payloads that are recovered locally
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Kind maps any error onto the engine's error kinds (InvalidInput, NotFound,
// Conflict, StorageFailure, Unexpected) so that adapters can translate them
// without inspecting concrete types.
package errs
