// Package errs provides the error kinds shared by the fulfillment core.
//
// Every kind is a sentinel (ErrObjectNotFound, ErrRuleViolation, ...) and has a
// struct type carrying details that unwraps to it, so callers can branch with
// errors.Is on the kind and errors.As on the details:
//
//   - ObjectNotFoundError: a referenced record does not exist
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: bad input
//   - RuleViolationError: a business rule rejected an otherwise valid request
//   - ErrConcurrentUpdate: the store refused a write because the row moved
//
// Transport adapters map kinds to status codes; nothing below the adapters
// knows about HTTP.
package errs
