package utils

import (
	"StockPilot-Backend/pkg/barcode"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	// "barcode" accepts EAN/UPC family codes only (see pkg/barcode).
	_ = Validate.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return barcode.IsValid(fl.Field().String())
	})
}
