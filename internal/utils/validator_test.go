// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type plotCodeFixture struct {
	Code string `validate:"plot_code"`
}

type phoneFixture struct {
	Phone string `validate:"phone"`
}

type pincodeFixture struct {
	Pincode string `validate:"pincode"`
}

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

func TestPlotCodeValidation(t *testing.T) {
	valid := []string{"PLOT001", "NV-12", "A1B"}
	for _, code := range valid {
		assert.NoError(t, ValidateStruct(plotCodeFixture{Code: code}), code)
	}

	invalid := []string{"", "ab", "plot001", "-PLOT", "PL"}
	for _, code := range invalid {
		assert.Error(t, ValidateStruct(plotCodeFixture{Code: code}), code)
	}
}

func TestPhoneValidation(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "+91 98765 43210"}
	for _, phone := range valid {
		assert.NoError(t, ValidateStruct(phoneFixture{Phone: phone}), phone)
	}

	invalid := []string{"", "12345", "not-a-phone", "+12345678901234567"}
	for _, phone := range invalid {
		assert.Error(t, ValidateStruct(phoneFixture{Phone: phone}), phone)
	}
}

func TestPincodeValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(pincodeFixture{Pincode: "560001"}))
	assert.Error(t, ValidateStruct(pincodeFixture{Pincode: "060001"}))
	assert.Error(t, ValidateStruct(pincodeFixture{Pincode: "5600"}))
	assert.Error(t, ValidateStruct(pincodeFixture{Pincode: "56000a"}))
}

func TestStrongPasswordValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(passwordFixture{Password: "Str0ng!pass"}))
	assert.Error(t, ValidateStruct(passwordFixture{Password: "short1!"}))
	assert.Error(t, ValidateStruct(passwordFixture{Password: "alllowercase1!"}))
	assert.Error(t, ValidateStruct(passwordFixture{Password: "NoNumbers!!"}))
	assert.Error(t, ValidateStruct(passwordFixture{Password: "NoSpecials123"}))
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	errs := GetValidationErrors(ValidateStruct(form{Email: "not-an-email"}))

	assert.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
}
