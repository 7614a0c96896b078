package vo

type SignupRequestVO struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	PhoneNo   string `json:"phoneNo"`
}

type EmailRequestVO struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRequestVO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequestVO struct {
	RefreshToken string `json:"refreshToken"`
}

type EditPasswordRequestVO struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type EditInfoRequestVO struct {
	Gender  string `json:"gender"`
	PhoneNo string `json:"phoneNo"`
}
