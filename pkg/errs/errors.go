package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrNotLoggedIn       = errors.New("Unauthorized access")
	ErrForbidden         = errors.New("Forbidden access")
	ErrNotFound          = errors.New("Resource not found")
	ErrProductNotFound   = errors.New("Product not found")
	ErrOrderNotFound     = errors.New("Order not found")
	ErrDuplicateName     = errors.New("Category already exists")
	ErrEmptyOrder        = errors.New("No order items")
	ErrInsufficientStock = errors.New("Insufficient stock for one or more products")
	ErrPriceMismatch     = errors.New("Submitted prices do not match current product prices")
	ErrOrderNotPaid      = errors.New("Order has not been paid yet")
)

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrNotLoggedIn:       ErrStatusNotLoggedIn,
	ErrForbidden:         ErrStatusNoPermission,
	ErrNotFound:          ErrStatusNotFound,
	ErrProductNotFound:   ErrStatusNotFound,
	ErrOrderNotFound:     ErrStatusNotFound,
	ErrDuplicateName:     ErrStatusClient,
	ErrEmptyOrder:        ErrStatusClient,
	ErrInsufficientStock: ErrStatusConflict,
	ErrPriceMismatch:     ErrStatusClient,
	ErrOrderNotPaid:      ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
