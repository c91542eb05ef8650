package services

import (
	"errors"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/go-playground/validator/v10"
	"reflect"
	"regexp"
	"strings"
	"sync"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	rgbHexRegex  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// report json names so messages match the request body
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = v.RegisterValidation("itemstatus", func(fl validator.FieldLevel) bool {
			return models.IsValidStatus(fl.Field().String())
		})
		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return IsHexColor(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsHexColor accepts #rgb and #rrggbb.
func IsHexColor(color string) bool {
	return rgbHexRegex.MatchString(color)
}

// validateRequest checks struct tags and turns the first failure into an ErrValidation.
func validateRequest(request interface{}) error {
	err := getValidator().Struct(request)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return newError(ErrValidation, "invalid request")
	}
	e := validationErrors[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return newError(ErrValidation, "%s is required", field)
	case "gt":
		return newError(ErrValidation, "%s must be greater than %s", field, e.Param())
	case "gte":
		return newError(ErrValidation, "%s must be at least %s", field, e.Param())
	case "max":
		return newError(ErrValidation, "%s must be at most %s characters", field, e.Param())
	case "itemstatus":
		return newError(ErrValidation, "%s must be one of %s, %s", field, models.StatusInBox, models.StatusOutOfBox)
	case "rgbhex":
		return newError(ErrValidation, "%s must be a hex color like #3b82f6", field)
	}
	return newError(ErrValidation, "%s is invalid", field)
}

func fieldError(field, reason string) error {
	return newError(ErrValidation, "%s %s", field, reason)
}
