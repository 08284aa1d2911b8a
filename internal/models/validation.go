package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// В ошибках валидации отдаём имена полей из json-тегов —
	// так, как их видит клиент API.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationErrors — ошибки валидации по полям: поле → список сообщений.
// Тело ответа 400 сериализуется из этой структуры как есть.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Add(field, message string) {
	ve[field] = append(ve[field], message)
}

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// collectFieldErrors переводит ошибки validator в ValidationErrors.
func collectFieldErrors(err error) ValidationErrors {
	ve := ValidationErrors{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("error", err.Error())
		return ve
	}

	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), messageFor(fe))
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "This field is invalid."
	}
}
