package theme

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxTenantIDLength bounds tenant identifiers.
const MaxTenantIDLength = 64

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Tenant ids end up inside attribute selectors, style elements and
	// file names, so only a conservative set of characters is allowed.
	tenantIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:@/-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("accent_color", func(fl validator.FieldLevel) bool {
			_, ok := accentHues[AccentColor(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("tenant_id", func(fl validator.FieldLevel) bool {
			return ValidTenantID(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ValidTenantID reports whether id can be used to scope a stylesheet.
func ValidTenantID(id string) bool {
	return len(id) <= MaxTenantIDLength && tenantIDPattern.MatchString(id)
}

// Validate checks every field of cfg against the allowed values. The
// returned error wraps ErrInvalidValue and names each offending field.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "tenant_id":
			msgs = append(msgs, fmt.Sprintf("%s %q must be 1-%d characters without whitespace, quotes, brackets or backslashes", fe.Field(), fe.Value(), MaxTenantIDLength))
		default:
			msgs = append(msgs, fmt.Sprintf("%s has unsupported value %q", fe.Field(), fe.Value()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(msgs, "; "))
}
