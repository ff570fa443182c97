package dto

import (
	"time"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// UserResponse is the password-free projection of an account.
type UserResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	Phone           string   `json:"phone,omitempty"`
	Address         string   `json:"address,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Verified        bool     `json:"isVerified"`
	ProfilePhoto    string   `json:"profilePhoto,omitempty"`
	Specialization  string   `json:"specialization,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Rating          float64  `json:"rating"`
	ServiceCharge   *float64 `json:"serviceCharge,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	CompanyIDNumber string   `json:"companyIdNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		Phone:           user.Phone,
		Address:         user.Address,
		Pincode:         user.Pincode,
		Verified:        user.Verified,
		ProfilePhoto:    user.Profile.ProfilePhoto,
		Specialization:  user.Profile.Specialization,
		Experience:      user.Profile.Experience,
		Rating:          user.Profile.Rating,
		ServiceCharge:   user.Profile.ServiceCharge,
		CompanyName:     user.Profile.CompanyName,
		CompanyIDNumber: user.Profile.CompanyIDNumber,
		CreatedAt:       user.CreatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}

// ProfileUpdateRequest payload for self-service profile edits.
type ProfileUpdateRequest struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	Pincode         *string  `json:"pincode"`
	ProfilePhoto    *string  `json:"profilePhoto"`
	Specialization  *string  `json:"specialization"`
	Experience      *string  `json:"experience"`
	ServiceCharge   *float64 `json:"serviceCharge"`
	CompanyName     *string  `json:"companyName"`
	CompanyIDNumber *string  `json:"companyIdNumber"`
}

// VerifyUserRequest payload for admin verification toggles.
type VerifyUserRequest struct {
	Verified bool `json:"isVerified"`
}
