package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Unknown error",
	ErrBind:            "Failed to bind request parameters",
	ErrValidation:      "Request validation failed",
	ErrTokenInvalid:    "Invalid authentication token",
	ErrTooManyRequests: "Too many requests",

	// Auth error codes
	ErrInvalidCredentials: "Invalid username or password",
	ErrPermissionDenied:   "Insufficient permissions",

	// Room error codes
	ErrRoomNotFound:   "Room does not exist",
	ErrRoomHasTenants: "Cannot delete this room because it has assigned tenants",

	// Tenant error codes
	ErrTenantNotFound:     "Tenant does not exist",
	ErrTenantAlreadyExist: "Tenant username already exists",

	// Payment error codes
	ErrPaymentNotFound:      "Payment record does not exist",
	ErrPaymentInvalidAmount: "Payment amount must not be negative",

	// Request error codes
	ErrRequestNotFound: "Request does not exist",

	// Database error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record does not exist",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Auth error codes
	ErrInvalidCredentials: StatusUnauthorized,
	ErrPermissionDenied:   StatusForbidden,

	// Room error codes
	ErrRoomNotFound:   StatusNotFound,
	ErrRoomHasTenants: StatusBadRequest,

	// Tenant error codes
	ErrTenantNotFound:     StatusNotFound,
	ErrTenantAlreadyExist: StatusBadRequest,

	// Payment error codes
	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentInvalidAmount: StatusBadRequest,

	// Request error codes
	ErrRequestNotFound: StatusNotFound,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
