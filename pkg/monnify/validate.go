package monnify

import (
	"reflect"
	"sync"

	apperrors "monnifyease/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func paramsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if a, ok := field.Interface().(Amount); ok {
				return a.InexactFloat64()
			}
			return nil
		}, Amount{})
	})
	return validate
}

// validateParams checks caller parameters before anything is sent.
func validateParams(params any) error {
	if err := paramsValidator().Struct(params); err != nil {
		return apperrors.Validation("invalid request parameters", err)
	}
	return nil
}
