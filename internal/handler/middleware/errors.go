package middleware

import "sncleaning-pricing/internal/pkg/errs"

var (
	errMissingToken     = errs.New("missing bearer token")
	errInsufficientRole = errs.New("admin role required")
	errRateLimited      = errs.New("too many quote requests")
)
