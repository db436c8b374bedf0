// File: internal/identity/errors.go
package identity

import (
	"strings"

	"worklink_app/internal/common"
)

// MapProviderError converts an Identity Toolkit error code into a
// user-facing AppError. Unknown codes degrade to a generic provider error;
// no retry is attempted for any of them.
func MapProviderError(code string) *common.AppError {
	// Some codes arrive with a trailing qualifier, e.g.
	// "WEAK_PASSWORD : Password should be at least 6 characters".
	normalized := code
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		normalized = code[:idx]
	}

	switch normalized {
	case "EMAIL_EXISTS":
		return common.ErrConflict.WithDetails("An account with this email already exists.")
	case "INVALID_EMAIL":
		return common.ErrInvalidInput.WithDetails("The email address is badly formatted.")
	case "WEAK_PASSWORD":
		return common.ErrInvalidInput.WithDetails("The password is too weak.")
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return common.ErrUnauthorized.WithDetails("Invalid email or password.")
	case "USER_DISABLED":
		return common.ErrForbidden.WithDetails("This account has been disabled.")
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return common.ErrProviderDenied.WithDetails("Too many attempts. Please try again later.")
	default:
		return common.ErrProviderDenied.WithDetails(code)
	}
}
