package form

import "adminpanel/internal/util"

// Login is the sign-in form. The phone number may be typed in any common
// notation.
type Login struct {
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" validate:"required,uzphone"`
	Password    string `form:"password" json:"password" validate:"required,min=6"`
}

// Normalize trims the phone number. Passwords are taken verbatim.
func (f *Login) Normalize() {
	trim(&f.PhoneNumber)
}

// Phone returns the number in API form, +998XXXXXXXXX.
func (f *Login) Phone() string {
	phone, _ := util.NormalizePhone(f.PhoneNumber)

	return phone
}

// ChangePassword is the own-password form.
type ChangePassword struct {
	CurrentPassword string `form:"currentPassword" json:"currentPassword" validate:"required"`
	NewPassword     string `form:"newPassword" json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" validate:"omitempty,eqfield=NewPassword"`
}
