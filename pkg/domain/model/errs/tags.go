package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound     = goerr.NewTag("not_found")    // 404
	TagValidation   = goerr.NewTag("validation")   // 400
	TagUnauthorized = goerr.NewTag("unauthorized") // 401
	TagForbidden    = goerr.NewTag("forbidden")    // 403
	TagConflict     = goerr.NewTag("conflict")     // 409

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500
	TagStorage  = goerr.NewTag("storage")  // 500 (persistence failures)

	TagInvalidRequest = goerr.NewTag("invalid_request")
)
