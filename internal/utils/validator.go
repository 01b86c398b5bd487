// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	plotCodeRegexp = regexp.MustCompile("^[A-Z0-9][A-Z0-9-]{2,49}$")
	phoneRegexp    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	pincodeRegexp  = regexp.MustCompile("^[1-9][0-9]{5}$")
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("plot_code", validatePlotCode)
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("pincode", validatePincode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

// Plot codes are uppercase alphanumerics like "PLOT001".
func validatePlotCode(fl validator.FieldLevel) bool {
	return plotCodeRegexp.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	return phoneRegexp.MatchString(phone)
}

// Indian postal codes: six digits, no leading zero.
func validatePincode(fl validator.FieldLevel) bool {
	return pincodeRegexp.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "strong_password":
		return "Password must contain at least 8 characters with uppercase, lowercase, number, and special character"
	case "plot_code":
		return "Plot code must be 3-50 uppercase letters, digits, or dashes"
	case "phone":
		return "Please enter a valid phone number"
	case "pincode":
		return "Please enter a valid 6-digit pincode"
	default:
		return e.Field() + " is invalid"
	}
}
