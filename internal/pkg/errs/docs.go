// Package errs provides standardized error types for the invoicing
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// Handlers rely on this classification to decide whether a failure is a
// caller mistake (not found, invalid value) or an infrastructure fault.
package errs
