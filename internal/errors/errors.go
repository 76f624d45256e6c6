package errors

import "errors"

// Validation and auth failures carry the exact message text the API exposes,
// so handlers can embed err.Error() directly in response bodies.
var (
	// ErrUsernameRequired is returned when signup is missing a username.
	ErrUsernameRequired = errors.New("Username is required")
	// ErrPasswordRequired is returned when signup is missing a password.
	ErrPasswordRequired = errors.New("Password is required")
	// ErrImageURLRequired is returned when signup is missing an image URL.
	ErrImageURLRequired = errors.New("Image URL is required")
	// ErrBioRequired is returned when signup is missing a bio.
	ErrBioRequired = errors.New("Bio is required")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("Username already taken")
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid username or password")
	// ErrTitleRequired is returned when a recipe has an empty title.
	ErrTitleRequired = errors.New("Title must be present")
	// ErrInstructionsInvalid is returned when recipe instructions are absent or
	// shorter than 50 characters.
	ErrInstructionsInvalid = errors.New("Instructions must be present and at least 50 characters long")
	// ErrRecipeInvalid is returned when the storage layer rejects a recipe at
	// commit time, e.g. the owning user does not exist.
	ErrRecipeInvalid = errors.New("Recipe validation failed")
	// ErrUserNotFound is returned when a session resolves to a missing user.
	ErrUserNotFound = errors.New("User not found")
	// ErrUnauthorized is returned when a request carries no valid session.
	ErrUnauthorized = errors.New("Unauthorized")
)

// IsValidation reports whether err is one of the signup/recipe validation
// failures that map to a 422 response.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrUsernameRequired),
		errors.Is(err, ErrPasswordRequired),
		errors.Is(err, ErrImageURLRequired),
		errors.Is(err, ErrBioRequired),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInstructionsInvalid),
		errors.Is(err, ErrRecipeInvalid):
		return true
	}
	return false
}

// ErrorResponse is the single-message failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is the structured failure body: {"errors":{"message":"..."}}.
type ValidationResponse struct {
	Errors ValidationMessage `json:"errors"`
}

// ValidationMessage carries the human-readable validation failure.
type ValidationMessage struct {
	Message string `json:"message"`
}

// NewValidationResponse wraps a message in the validation body shape.
func NewValidationResponse(message string) ValidationResponse {
	return ValidationResponse{Errors: ValidationMessage{Message: message}}
}
