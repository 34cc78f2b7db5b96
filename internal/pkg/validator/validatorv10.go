package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/eatelite/internal/pkg/strcase"
)

// Optional leading plus followed by 6-20 digits.
var rePhone = regexp.MustCompile(`^\+?[0-9]{6,20}$`)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are the json tag name of the field, or its snake_case Go name.
type V10ValidationError map[string]string

func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

type customRule struct {
	tag     string
	message string
	check   func(s string) bool
}

// customRules apply to string fields only; any other kind fails the rule.
var customRules = []customRule{
	{
		tag:     "phone",
		message: "{0} must be 6-20 digits with an optional leading +",
		check:   rePhone.MatchString,
	},
	{
		// Layout errors are left to datetime=2006-01-02.
		tag:     "pastdate",
		message: "{0} must not be in the future",
		check: func(s string) bool {
			d, err := time.Parse(time.DateOnly, s)
			return err != nil || !d.After(time.Now())
		},
	},
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range customRules {
		if err := registerRule(validate, enTrans, rule); err != nil {
			return nil, fmt.Errorf("validator: rule %q: %w", rule.tag, err)
		}
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

func registerRule(validate *validator.Validate, enTrans ut.Translator, rule customRule) error {
	if err := validate.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return rule.check(fl.Field().String())
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation(rule.tag, enTrans,
		func(ut ut.Translator) error {
			return ut.Add(rule.tag, rule.message, false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "tag", fe.Tag(), "error", err)
				return fe.Error()
			}
			return t
		},
	)
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(V10ValidationError, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
	}
	return out
}
