package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/quickbasket/quickbasket-api/pkg/response"
)

func validationDetails(err error) interface{} {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]response.ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, response.ValidationError{
			Field: fieldError.Field(),
			Tag:   fieldError.Tag(),
		})
	}

	return details
}
