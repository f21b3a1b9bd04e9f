package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("currency", validateCurrency)
	validate.RegisterValidation("payment_type", validatePaymentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCurrency(fl validator.FieldLevel) bool {
	currency := fl.Field().String()
	re := regexp.MustCompile(`^[A-Z]{3}$`)
	return re.MatchString(currency)
}

func validatePaymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "card" || value == "crypto" || value == "other"
}
