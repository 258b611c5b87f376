package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=jobseeker employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// UpdateProfileRequest carries partial profile updates. Pointer fields are
// applied only when set. Role restrictions (employers may only change the
// name/about/company fields) are enforced in the service layer.
type UpdateProfileRequest struct {
	ID                 uuid.UUID           `json:"-"`
	Name               *string             `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email              *string             `json:"email,omitempty" validate:"omitempty,email"`
	Skills             *[]string           `json:"skills,omitempty"`
	Education          *[]models.Education `json:"education,omitempty"`
	DOB                *time.Time          `json:"dob,omitempty"`
	PhoneNumber        *string             `json:"phone_number,omitempty"`
	About              *string             `json:"about,omitempty"`
	Resume             *string             `json:"resume,omitempty"`
	CompanyName        *string             `json:"company_name,omitempty"`
	CompanyDescription *string             `json:"company_description,omitempty"`
}

type DeleteUserRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type ToggleUserStatusRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type UserResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	JobsPosted int               `json:"jobs_posted"`
	Profile    models.Profile    `json:"profile"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
