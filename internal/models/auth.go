package models

// Email is presence-checked only: any non-empty string is accepted and
// normalized by the auth service, no format validation.
type RegisterRequest struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required"`
	Password  string   `json:"password" validate:"required,min=6"`
	Role      string   `json:"role"`
	Interests []string `json:"interests"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest carries a partial profile update.
type UpdateProfileRequest struct {
	Name      *string   `json:"name"`
	Interests *[]string `json:"interests"`
}

// VerifyOrganizerRequest toggles organizer verification. A missing flag
// defaults to verified.
type VerifyOrganizerRequest struct {
	IsVerifiedOrganizer *bool `json:"isVerifiedOrganizer"`
}
