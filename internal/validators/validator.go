// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-parish/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const afterStartTag = "after_start"

// StructValidator implements [Validator] with go-playground/validator.
type StructValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator builds a validator with English messages and JSON field names.
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, translator)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(eventStructValidation, models.Event{})
	_ = v.RegisterTranslation(afterStartTag, translator,
		func(ut.Translator) error { return nil },
		func(ut.Translator, validator.FieldError) string { return "must not be before starts_at" },
	)

	return &StructValidator{validate: v, translator: translator}
}

// Validate checks obj against its struct tags. When fields are given only
// failures on those JSON fields are reported.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if len(fields) > 0 && !contains(fields, fe.Field()) {
			continue
		}
		out[fe.Field()] = fe.Translate(v.translator)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func eventStructValidation(sl validator.StructLevel) {
	event := sl.Current().Interface().(models.Event)
	if event.EndsAt != nil && !event.StartsAt.IsZero() && event.EndsAt.Before(event.StartsAt) {
		sl.ReportError(event.EndsAt, "ends_at", "EndsAt", afterStartTag, "")
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
