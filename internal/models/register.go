package models

import "time"

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Password, 8 to 20 characters with an uppercase letter, a digit and a special character
	// required: true
	// example: Abcdef1!
	Password string `json:"password"`

	// First and last name
	// required: true
	// example: Jane Doe
	FullName string `json:"full_name"`

	// Phone
	// example: +359888123456
	Phone *string `json:"phone,omitempty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	ID        int64      `json:"id" example:"1"`
	Email     string     `json:"email" example:"jane@example.com"`
	FullName  string     `json:"full_name" example:"Jane Doe"`
	Phone     *string    `json:"phone"`
	CreatedOn time.Time  `json:"create_on"`
	UpdatedOn *time.Time `json:"updated_on"`
}

// NewRegisterResponse renders a stored user without its password hash.
func NewRegisterResponse(u UserDB) RegisterResponse {
	return RegisterResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedOn: u.CreatedOn,
		UpdatedOn: u.UpdatedOn,
	}
}

// ValidationErrorResponse carries every violation found in a request, keyed by field
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// ErrorResponse represents a plain error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}
