package validation

import (
	"fmt"
	"reflect"
	"strings"

	"dcn-community/internal/domain"
	"dcn-community/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("answer_option", func(fl validator.FieldLevel) bool {
		return domain.IsValidOption(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Struct validates a request DTO using its `validate` tags.
func (v *Validator) Struct(req interface{}) domain.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{{
			Field:   "body",
			Code:    domain.CodeInvalidFormat,
			Message: "format permintaan tidak valid",
		}}
	}

	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "required_if":
		return domain.NewMissingFieldError(field)
	case "min", "max", "gt", "gte", "lt", "lte", "ne":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: rangeMessage(field, fe),
			Value:   fe.Value(),
		}
	case "excluded_if":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeInvalidInput,
			Message: fmt.Sprintf("%s tidak boleh diisi", field),
		}
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

// fieldPath drops the top-level struct name from the namespace, so nested
// errors read like "questions[0].opsi_a".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func rangeMessage(field string, fe validator.FieldError) string {
	isLen := fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map
	switch fe.Tag() {
	case "min", "gte":
		if isLen {
			return fmt.Sprintf("%s minimal %s item/karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s minimal %s", field, fe.Param())
	case "max", "lte":
		if isLen {
			return fmt.Sprintf("%s maksimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s harus lebih dari %s", field, fe.Param())
	case "ne":
		return fmt.Sprintf("%s tidak boleh %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s di luar rentang", field)
	}
}

// ValidateID validates a ULID path parameter.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateSessionToken validates the format of a quiz session token.
func (v *Validator) ValidateSessionToken(token string) domain.ValidationErrors {
	if strings.TrimSpace(token) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("token")}
	}
	if !util.IsSessionToken(token) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("token", token)}
	}
	return nil
}
