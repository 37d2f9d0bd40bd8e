package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrMissingFields
	ErrInvalidEmail
	ErrPasswordTooShort
	ErrInvalidPhone
	ErrRegistrationFailed
	ErrInsufficientStock
	ErrInvalidOrderStatus
	ErrDashboardUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrForbidden:            "forbidden",
	ErrCredentialExists:     "An account with this email already exists",
	ErrInvalidPassword:      "password invalid",
	ErrMissingFields:        "Please provide all required fields",
	ErrInvalidEmail:         "Please provide a valid email address",
	ErrPasswordTooShort:     "Password must be at least 8 characters long",
	ErrInvalidPhone:         "Please enter a valid 10-digit phone number",
	ErrRegistrationFailed:   "An error occurred during registration. Please try again.",
	ErrInsufficientStock:    "insufficient stock",
	ErrInvalidOrderStatus:   "invalid order status",
	ErrDashboardUnavailable: "Failed to fetch dashboard data",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrMissingFields:        http.StatusBadRequest,
	ErrInvalidEmail:         http.StatusBadRequest,
	ErrPasswordTooShort:     http.StatusBadRequest,
	ErrInvalidPhone:         http.StatusBadRequest,
	ErrRegistrationFailed:   http.StatusInternalServerError,
	ErrInsufficientStock:    http.StatusBadRequest,
	ErrInvalidOrderStatus:   http.StatusBadRequest,
	ErrDashboardUnavailable: http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrCredentialExists:     "0006",
	ErrInvalidPassword:      "0007",
	ErrMissingFields:        "0008",
	ErrInvalidEmail:         "0009",
	ErrPasswordTooShort:     "0010",
	ErrInvalidPhone:         "0011",
	ErrRegistrationFailed:   "0012",
	ErrInsufficientStock:    "0013",
	ErrInvalidOrderStatus:   "0014",
	ErrDashboardUnavailable: "0015",
}
