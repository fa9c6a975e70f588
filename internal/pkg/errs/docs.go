// Package errs holds the generic error types shared by the warehouse domain
// and its adapters.
//
// Domain packages keep their own sentinels (order.ErrInvalidTransition,
// product.ErrDuplicateProduct and so on); errs covers the value and lookup
// failures that every package reports the same way:
//   - ObjectNotFoundError: an order, item or product lookup found nothing
//   - ValueIsRequiredError: a mandatory field such as a barcode was empty
//   - ValueIsInvalidError: a field failed to parse, e.g. a location or a price
//   - ValueIsOutOfRangeError: a quantity fell outside its allowed bounds
//
// Every type unwraps to a sentinel (ErrObjectNotFound, ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange) so the HTTP adapter can map
// failures to status codes with errors.Is. Messages are kept on one line.
package errs
