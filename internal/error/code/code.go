package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Auth error codes (101xxx).
const (
	// ErrInvalidCredentials - 401: bad username or password.
	ErrInvalidCredentials int = iota + 101000
	// ErrPermissionDenied - 403: insufficient role.
	ErrPermissionDenied
)

// Room error codes (102xxx).
const (
	// ErrRoomNotFound - 404: room not found.
	ErrRoomNotFound int = iota + 102000
	// ErrRoomHasTenants - 400: room still has assigned tenants.
	ErrRoomHasTenants
)

// Tenant error codes (103xxx).
const (
	// ErrTenantNotFound - 404: tenant not found.
	ErrTenantNotFound int = iota + 103000
	// ErrTenantAlreadyExist - 400: tenant username taken.
	ErrTenantAlreadyExist
)

// Payment error codes (104xxx).
const (
	// ErrPaymentNotFound - 404: payment not found.
	ErrPaymentNotFound int = iota + 104000
	// ErrPaymentInvalidAmount - 400: payment amount invalid.
	ErrPaymentInvalidAmount
)

// Request error codes (105xxx).
const (
	// ErrRequestNotFound - 404: request not found.
	ErrRequestNotFound int = iota + 105000
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
