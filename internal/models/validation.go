package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is matched by every field validation failure
var ErrInvalidRecord = errors.New("invalid record")

var (
	hexCodePattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// Limits holds the configured lower bounds for the positive small integer
// columns.
type Limits struct {
	MinCookingTime      int
	MinIngredientAmount int
}

// DefaultLimits matches the schema's historical minimum of one
var DefaultLimits = Limits{MinCookingTime: 1, MinIngredientAmount: 1}

// NewValidator returns a validator that understands the custom rules used
// in the model struct tags.
func NewValidator(limits Limits) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"hexcode":  matches(hexCodePattern),
		"slug":     matches(slugPattern),
		"username": func(fl validator.FieldLevel) bool {
			return IsUsername(fl.Field().String())
		},
		"min_cooking_time": func(fl validator.FieldLevel) bool {
			return fl.Field().Int() >= int64(limits.MinCookingTime)
		},
		"min_amount": func(fl validator.FieldLevel) bool {
			return fl.Field().Int() >= int64(limits.MinIngredientAmount)
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("models: register %s validation: %v", tag, err))
		}
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsUsername reports whether s is a valid username. The dot-only names are
// refused because usernames become path segments of uploaded images.
func IsUsername(s string) bool {
	return s != "." && s != ".." && usernamePattern.MatchString(s)
}

// IsHexCode reports whether s is a #RGB or #RRGGBB color code
func IsHexCode(s string) bool {
	return hexCodePattern.MatchString(s)
}

// ValidationError is returned when a record fails field validation before
// it reaches the database.
type ValidationError struct {
	Table string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Table, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Fields lists the offending fields, or nil when the cause is not a
// validator error.
func (e *ValidationError) Fields() []string {
	var verrs validator.ValidationErrors
	if !errors.As(e.Err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
