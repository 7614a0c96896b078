package dto

import "jiwoo-back/types"

type UserDTO struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Provider  string         `json:"provider"`
	UserRole  types.UserRole `json:"userRole"`
	BirthDate types.Date     `json:"birthDate"`
	Gender    string         `json:"gender"`
	PhoneNo   string         `json:"phoneNo"`
}

type SignupDTO struct {
	Name      string
	Email     string
	Password  string
	BirthDate types.Date
	Gender    string
	PhoneNo   string
}

type TokenDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ClientInfo describes where a login came from.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
