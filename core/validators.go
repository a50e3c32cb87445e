package core

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} must be a non-empty string"

	notNaNTag  = "notnan"
	notNaNText = "{0} must be numeric"

	// range tags map to ErrOutOfRange, everything else to ErrInvalidArgument
	rangeTags = map[string]bool{"gte": true, "lte": true, "gt": true, "lt": true, "min": true, "max": true}
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(notBlankTag, notBlankText)

	_ = Validate.RegisterValidation(notNaNTag, notNaNValidation)
	RegisterCustomTranslation(notNaNTag, notNaNText)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidateStruct validates `s` and converts a failure into a *ValidationError.
func ValidateStruct(s interface{}) error {
	return toValidationError("", Validate.Struct(s))
}

// ValidateVar validates a single value against `tag`, reporting failures under `field`.
func ValidateVar(field string, value interface{}, tag string) error {
	return toValidationError(field, Validate.Var(value, tag))
}

// toValidationError translates validator errors and picks the error kind from the first failed tag.
func toValidationError(field string, err error) error {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrs) == 0 {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	flds := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		msg := fe.Translate(Translator)
		if fe.Field() == "" {
			// Var() reports no field name, the translated text starts with a blank subject
			msg = name + msg
		}
		flds = append(flds, FieldError{Field: name, Error: msg})
	}

	kind := ErrInvalidArgument
	if rangeTags[vErrs[0].ActualTag()] {
		kind = ErrOutOfRange
	}
	return NewValidationError(errors.Wrap(kind, flds[0].Error), flds...)
}

// Custom Global Validators

// notBlankValidation fails on strings that are empty once whitespace is trimmed.
func notBlankValidation(fl validator.FieldLevel) bool {
	return CleanString(fl.Field().String()) != ""
}

// notNaNValidation fails on NaN floats.
func notNaNValidation(fl validator.FieldLevel) bool {
	fld := fl.Field()
	switch fld.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(fld.Float())
	}
	return true
}
