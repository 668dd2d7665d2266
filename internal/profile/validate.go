package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"subprofile/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("proxytype", validateProxyType); err != nil {
		panic(fmt.Sprintf("failed to register proxytype validator: %v", err))
	}
}

func validateProxyType(fl validator.FieldLevel) bool {
	t := domain.ProxyType(fl.Field().Int())
	return t.Valid() && t != domain.ProxyTypeUnknown
}

// endpoint is the part of a record every usable profile needs. Which
// credentials a protocol requires is left to its decoder.
type endpoint struct {
	Type     domain.ProxyType `validate:"proxytype"`
	Hostname string           `validate:"required"`
	Port     uint16           `validate:"min=1"`
}

// Validate reports whether p can be handed to a renderer: a known type, a
// hostname and a port in 1-65535. Unused fields at their defaults are fine.
func Validate(p *domain.Proxy) error {
	e := endpoint{
		Type:     p.Type,
		Hostname: strings.TrimSpace(p.Hostname),
		Port:     p.Port,
	}
	if err := validate.Struct(e); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Field(),
			err.Tag(),
		))
	}
	return fmt.Errorf("invalid profile: %s", strings.Join(msgs, "; "))
}
