// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-playground/validator/v10"
)

const (
	// messageTag overrides the generated message of a failing field.
	messageTag = "msg"

	tagEmailPattern = "email_pattern"
	tagSubscription = "subscription"
)

// emailPattern is the address shape accepted for users and contacts.
var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)+@\w+([\.:]?\w+)+(\.[a-zA-Z0-9]{2,3})+$`)

// SchemaValidator implements [Validator] on top of go-playground/validator.
// It is safe for concurrent use; the underlying validator caches struct
// metadata after the first call per type.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator builds a validator with the custom rules used by the
// request schemas registered:
//   - email_pattern: string matches the accepted email shape;
//   - subscription:  value is one of the known subscription tiers.
//
// Field names in messages are taken from the json tag.
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration only fails on empty tag names or nil funcs
	_ = v.RegisterValidation(tagEmailPattern, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(tagSubscription, func(fl validator.FieldLevel) bool {
		return models.Subscription(fl.Field().String()).IsValid()
	})

	return &SchemaValidator{validate: v}
}

// Validate checks obj against its `validate` tags. When fields are given only
// those struct fields (Go names) are checked.
//
// Returns nil, a [*ValidationError] listing every failing field, or
// [ErrUnsupportedType] when obj is not a struct.
func (s *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	objType := reflect.TypeOf(obj)
	for objType.Kind() == reflect.Pointer {
		objType = objType.Elem()
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(objType, fe),
		})
	}

	return result
}

// MustCompile runs every schema through v once so a malformed tag panics at
// startup instead of on the first request.
func MustCompile(v Validator, schemas ...any) {
	for _, schema := range schemas {
		err := v.Validate(context.Background(), schema)
		if errors.Is(err, ErrUnsupportedType) {
			panic(err)
		}
	}
}

func fieldMessage(objType reflect.Type, fe validator.FieldError) string {
	if objType.Kind() == reflect.Struct {
		if sf, ok := objType.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get(messageTag); msg != "" {
				return msg
			}
		}
	}

	field := fmt.Sprintf("%q", fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
	case tagEmailPattern:
		return fmt.Sprintf("%s with value %q fails to match the required pattern", field, fe.Value())
	case tagSubscription:
		values := make([]string, 0, len(models.Subscriptions))
		for _, s := range models.Subscriptions {
			values = append(values, string(s))
		}
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(values, ", "))
	default:
		return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
	}
}
