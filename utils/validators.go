package utils

import (
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator registers the planner's custom rules on gin's binding
// validator: `password` strength, `difficulty` labels and `weekday`
// names for preferred study days.
func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
		v.RegisterValidation("difficulty", ValidateDifficultyRule)
		v.RegisterValidation("weekday", ValidateWeekdayRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidatePassword requires at least 6 characters with a number and a
// special character.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	hasNumber := false
	hasSpecial := false
	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasNumber && hasSpecial
}

func ValidateDifficultyRule(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "easy", "medium", "hard":
		return true
	}
	return false
}

func ValidateWeekdayRule(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return true
		}
	}
	return false
}
