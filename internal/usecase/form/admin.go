package form

import (
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/util"
)

// Admin creates or edits an operator account. Password is required on
// create; on edit an empty password keeps the current one.
type Admin struct {
	FullName    string `form:"fullName" json:"fullName" validate:"required"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" validate:"required"`
	Password    string `form:"password" json:"password" validate:"omitempty,min=6"`
}

// AdminFrom prefills the edit form. The password is never prefilled.
func AdminFrom(a *entity.Admin) Admin {
	return Admin{
		FullName:    a.FullName,
		PhoneNumber: util.FormatPhone(a.PhoneNumber),
	}
}

func (f *Admin) Normalize() {
	trim(&f.FullName, &f.PhoneNumber)
}

// ToRequest builds the request body; an empty password is left out. Uzbek
// numbers are sent as +998XXXXXXXXX, anything else as typed.
func (f *Admin) ToRequest() service.AdminRequest {
	phone, ok := util.NormalizePhone(f.PhoneNumber)
	if !ok {
		phone = f.PhoneNumber
	}

	req := service.AdminRequest{
		FullName:    f.FullName,
		PhoneNumber: phone,
	}
	if f.Password != "" {
		password := f.Password
		req.Password = &password
	}

	return req
}
