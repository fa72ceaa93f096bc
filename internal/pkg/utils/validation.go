package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateObjectID checks the 24-char hex shape of a mongo document ID.
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 24 {
		return false
	}
	for _, r := range value {
		isDigit := r >= '0' && r <= '9'
		isHexLower := r >= 'a' && r <= 'f'
		isHexUpper := r >= 'A' && r <= 'F'
		if !isDigit && !isHexLower && !isHexUpper {
			return false
		}
	}
	return true
}
