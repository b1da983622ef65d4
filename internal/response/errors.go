package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrWrongPassword      ErrCode = "WRONG_PASSWORD"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrBlogNotFound  ErrCode = "BLOG_NOT_FOUND"
	ErrAdminNotFound ErrCode = "ADMIN_NOT_FOUND"
	ErrConflict      ErrCode = "CONFLICT"
	ErrAdminExists   ErrCode = "ADMIN_EXISTS"
	ErrDuplicateSlug ErrCode = "DUPLICATE_SLUG"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrServiceUnavailable ErrCode = "SERVICE_UNAVAILABLE"
	ErrInternal           ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid login"
	case ErrTokenRequired:
		return "Token required"
	case ErrTokenInvalid:
		return "Invalid token"
	case ErrWrongPassword:
		return "Current password is incorrect"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Missing or invalid fields"
	case ErrInvalidID:
		return "Invalid ID"
	case ErrInvalidPayload:
		return "Invalid request body"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Not found"
	case ErrBlogNotFound:
		return "Blog not found"
	case ErrAdminNotFound:
		return "Admin not found"
	case ErrConflict:
		return "Resource already exists"
	case ErrAdminExists:
		return "Admin exists"
	case ErrDuplicateSlug:
		return "Too many posts share this title"

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "File upload is required"
	case ErrUnsupportedFile:
		return "Unsupported file type"
	case ErrFileTooLarge:
		return "File exceeds the size limit"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrServiceUnavailable:
		return "Service temporarily unavailable"
	case ErrInternal:
		return "Server error"
	default:
		return "Server error"
	}
}
