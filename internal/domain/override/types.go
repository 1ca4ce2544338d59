package override

import "errors"

var (
	ErrMissingCustomer  = errors.New("customer id is required")
	ErrEmptyServiceType = errors.New("service type cannot be empty")
)
