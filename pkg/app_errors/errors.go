package apperrors

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternalServerError  = errors.New("internal server error")
	ErrInvalidEventStatus   = errors.New("invalid event status")
	ErrAlreadyRegistered    = errors.New("already_registered")
	ErrEmailTaken           = errors.New("An account with this email already exists. Please sign in instead.")
	ErrInvalidCredentials   = errors.New("Invalid email or password.")
	ErrInvalidAdminLogin    = errors.New("Invalid admin credentials")
	ErrWeakPassword         = errors.New("Password must be at least 6 characters long")
	ErrAdminAuthRequired    = errors.New("Admin authentication required")
	ErrSignInRequired       = errors.New("sign in required")
	ErrSessionNotFound      = errors.New("session not found")
	ErrCacheMiss            = errors.New("cache miss")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMediaTooLarge        = errors.New("media too large")

	// createPendingEvent 驗證錯誤，訊息直接回給前端
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrInvalidDateFormat     = errors.New("Invalid date format")
	ErrInvalidCategory       = errors.New("Invalid category")
	ErrInvalidDateRange      = errors.New("End date must not precede start date")
)
