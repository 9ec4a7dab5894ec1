// Package errs holds the error types shared by the order service.
//
// Every type wraps a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) so callers classify failures
// with errors.Is and read details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
//
// Constructors come in pairs, with and without an underlying cause.
package errs
