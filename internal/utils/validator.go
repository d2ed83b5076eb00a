package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate == nil {
		v := validator.New()
		if err := v.RegisterValidation("pwbytes", passwordFitsHash); err != nil {
			panic(err)
		}
		Validate = v
	}
}

// passwordFitsHash backs the "pwbytes" tag: bcrypt only accepts the first
// MaxPasswordBytes bytes, which is fewer than "max" allows for multibyte text.
func passwordFitsHash(fl validator.FieldLevel) bool {
	return PasswordFits(fl.Field().String())
}
