package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var rePostalCode = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]*$`)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// TagChecker evaluates go-playground/validator v10 tags against single values
// and renders failures as English messages.
type TagChecker struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewTagChecker constructs a TagChecker with English translations and custom rules.
func NewTagChecker() (*TagChecker, error) {
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

	if err := registerCustomTags(validate, enTrans); err != nil {
		return nil, err
	}

	return &TagChecker{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Var checks value against tag and returns the failure message for field, or
// "" when the value passes.
func (c *TagChecker) Var(field string, value any, tag string) string {
	err := c.validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		slog.Warn("unexpected tag validation failure", "field", field, "tag", tag, "error", err)
		return fmt.Sprintf("%s is invalid", field)
	}

	// Var has no struct field, so the translation starts at the predicate.
	msg := strings.TrimSpace(fieldErrs[0].Translate(c.translator))
	return field + " " + msg
}

// Struct validates the `validate` tags of s, returning the raw
// validator.ValidationErrors on failure. Modules use it to check their
// wiring dependencies at startup.
func (c *TagChecker) Struct(s any) error {
	return c.validate.Struct(s)
}

// tagMessages overrides or fills in English messages. The default
// translations have no entry for iso3166_1_alpha2.
var tagMessages = map[string]string{
	"postalcode":       "{0} may only contain letters, digits, spaces and hyphens",
	"iso3166_1_alpha2": "{0} must be a valid ISO 3166-1 alpha-2 country code",
}

func registerCustomTags(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		p, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return rePostalCode.MatchString(p)
	}); err != nil {
		return err
	}

	for tag, text := range tagMessages {
		if err := validate.RegisterTranslation(tag, enTrans,
			func(ut ut.Translator) error {
				return ut.Add(tag, text, true)
			},
			translate,
		); err != nil {
			return err
		}
	}

	return nil
}

func translate(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		slog.Warn("warning: error translating", "FieldError", fe, "error", err)
		return fe.Error()
	}

	return t
}
