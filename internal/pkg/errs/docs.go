// Package errs provides the shared error types of the mailroom service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Domain packages wrap these types for validation failures, repositories use
// ObjectNotFoundError and ObjectAlreadyExistsError, and the HTTP adapter maps
// the sentinels to status codes.
package errs
