package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerDateAfterValidation enforces strict calendar ordering between two
// "2006-01-02" date string fields. The tag parameter names the sibling field
// the annotated field must come after.
func registerDateAfterValidation(field val.FieldLevel) bool {
	current, err := time.Parse(constant.DateFormat, field.Field().String())
	if err != nil {
		return false
	}

	parent := field.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	sibling := parent.FieldByName(field.Param())
	if !sibling.IsValid() || sibling.Kind() != reflect.String {
		return false
	}

	reference, err := time.Parse(constant.DateFormat, sibling.String())
	if err != nil {
		return false
	}

	return current.After(reference)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("dateafter", registerDateAfterValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.ValidationFromError(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}
