// Package errs provides the standardized error taxonomy for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The taxonomy covers the recoverable failure classes of the domain:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, recoverable by the caller correcting it
//   - ObjectNotFoundError: a referenced entity is absent
//   - ConflictError: an invariant violation such as a duplicate active
//     courier assignment or a duplicate rating
//   - ForbiddenError: the caller is not entitled to the operation
//   - InvalidStateError: an illegal state transition attempt
//   - StorageError: an underlying store failure, surfaced as-is
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) matched with errors.Is
//   - A struct type carrying the offending field or id
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// Errors are never swallowed: every failure is returned to the immediate
// caller with enough structured detail to render a user-facing message
// upstream.
package errs
