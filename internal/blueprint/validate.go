package blueprint

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
)

var validate, translator = newValidator()

func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()

	enLocale := en.New()
	enTranslator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(v, enTranslator); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	// The first definition of a struct or event must have a name and a type
	if err := v.RegisterValidation("firstdefinition", func(fl validator.FieldLevel) bool {
		defs, ok := fl.Field().Interface().([]Definition)
		if !ok || len(defs) == 0 {
			return false
		}
		return notBlank(defs[0].Name) && notBlank(defs[0].Type)
	}); err != nil {
		panic(err)
	}

	// Use JSON field name in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v, enTranslator
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// valid returns the items that pass validation. Skipped items are logged.
func valid[T any](kind string, items []T) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			log.Debugf("skipping %s #%d: %s", kind, i, describe(err))
			continue
		}
		out = append(out, item)
	}
	return out
}

func describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return err.Error()
	}
	messages := make([]string, len(validationErrs))
	for i, e := range validationErrs {
		if e.Tag() == "firstdefinition" {
			messages[i] = e.Field() + " must start with a named and typed entry"
			continue
		}
		messages[i] = e.Translate(translator)
	}
	return strings.Join(messages, "; ")
}
