package domain

// Profile represents a user's contact profile.
type Profile struct {
	UserID   string  `json:"user_id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateProfileRequest holds the optional fields of a partial profile update.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// Validate checks that every provided field is well-formed.
func (r *UpdateProfileRequest) Validate() error {
	if r.Email != nil && *r.Email == "" {
		return ErrValidation("email must not be empty")
	}
	if r.FullName != nil && *r.FullName == "" {
		return ErrValidation("full_name must not be empty")
	}
	return nil
}
