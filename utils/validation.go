package utils

import (
	"booking/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules:
//
//	objectid  24-hex ObjectID string
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return entity.IsID(fl.Field().String())
	})
}
