// Package validate checks request shapes against the documented service
// constraints before they leave the client.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// patterns are the named string formats used by the generated struct tags.
var patterns = map[string]struct {
	re   *regexp.Regexp
	text string
}{
	"comprehend_arn": {
		regexp.MustCompile(`^arn:aws(-[^:]+)?:comprehend:[a-zA-Z0-9-]*:[0-9]{12}:[a-zA-Z0-9-]{1,64}/[a-zA-Z0-9](-*[a-zA-Z0-9])*(/(dataset|version)/[a-zA-Z0-9](-*[a-zA-Z0-9])*)?$`),
		"{0} must be a Comprehend resource ARN",
	},
	"iam_role_arn": {
		regexp.MustCompile(`^arn:aws(-[^:]+)?:iam::[0-9]{12}:role/.+$`),
		"{0} must be an IAM role ARN",
	},
	"s3_uri": {
		regexp.MustCompile(`^s3://[a-z0-9][\.\-a-z0-9]{1,61}[a-z0-9](/.*)?$`),
		"{0} must be an s3:// URI",
	},
	"kms_key_id": {
		regexp.MustCompile(`^[[:ascii:]]+$`),
		"{0} must be a KMS key ID, alias or ARN",
	},
	"client_token": {
		regexp.MustCompile(`^[a-zA-Z0-9-]+$`),
		"{0} may only contain letters, digits and hyphens",
	},
	"resource_name": {
		regexp.MustCompile(`^[a-zA-Z0-9](-*[a-zA-Z0-9])*$`),
		"{0} must be alphanumeric with single inner hyphens",
	},
}

// service holds the validator singleton and its translator.
type service struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	once sync.Once
	svc  *service
)

func get() *service {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// report wire names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		for tag, p := range patterns {
			re := p.re
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				f := fl.Field()
				return f.Kind() == reflect.String && re.MatchString(f.String())
			})
			registerShort(v, trans, tag, p.text)
		}

		svc = &service{validate: v, translator: trans}
	})
	return svc
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// FieldError is one violated constraint.
type FieldError struct {
	// Field is the dotted wire path, for example DocumentReaderConfig.DocumentReadAction.
	Field   string
	Tag     string
	Message string
}

// Error lists every constraint a request violates.
type Error struct {
	Shape  string
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid " + e.Shape + ": " + strings.Join(msgs, "; ")
}

// Struct validates a request shape and nested shapes reachable from it.
// A nil shape is valid; the service reports its missing members.
func Struct(v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	s := get()
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Shape: reflect.Indirect(rv).Type().Name()}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Tag:     fe.Tag(),
			Message: fe.Translate(s.translator),
		})
	}
	return out
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
