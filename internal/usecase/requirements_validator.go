package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	ramCapacityRe     = regexp.MustCompile(`(?i)^\d+GB$`)
	storageCapacityRe = regexp.MustCompile(`(?i)^\d+(GB|TB)$`)
)

// requirementsValidator singleton, custom tags ramcapacity va storagecapacity bilan
func requirementsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		mustRegister(validate, "ramcapacity", func(fl validator.FieldLevel) bool {
			return ramCapacityRe.MatchString(fl.Field().String())
		})
		mustRegister(validate, "storagecapacity", func(fl validator.FieldLevel) bool {
			return storageCapacityRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// NormalizeRequirements trims and lowercases the enum fields; empty brands become "any", empty usage "gaming"
func NormalizeRequirements(req entity.Requirements) entity.Requirements {
	req.CPUBrand = strings.ToLower(strings.TrimSpace(req.CPUBrand))
	if req.CPUBrand == "" {
		req.CPUBrand = entity.BrandAny
	}
	req.GPUBrand = strings.ToLower(strings.TrimSpace(req.GPUBrand))
	if req.GPUBrand == "" {
		req.GPUBrand = entity.BrandAny
	}
	req.Usage = strings.ToLower(strings.TrimSpace(req.Usage))
	if req.Usage == "" {
		req.Usage = constants.DefaultUsage
	}
	req.RAM = strings.TrimSpace(req.RAM)
	req.Storage.Capacity = strings.TrimSpace(req.Storage.Capacity)
	return req
}

// ValidateRequirements normalized requirements or a VALIDATION_ERROR listing every bad field
func ValidateRequirements(req entity.Requirements) (entity.Requirements, error) {
	req = NormalizeRequirements(req)
	err := requirementsValidator().Struct(req)
	if err == nil {
		return req, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return req, &RecommendationError{Kind: KindValidation, Err: err}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return req, newError(KindValidation, "", "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "ramcapacity":
		return fmt.Sprintf("%s must look like 16GB, got %q", field, fe.Value())
	case "storagecapacity":
		return fmt.Sprintf("%s must look like 500GB or 1TB, got %q", field, fe.Value())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
