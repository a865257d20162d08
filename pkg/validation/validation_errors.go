package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldDetail is one entry of the per-field details array returned with
// validation failures.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldLabels maps struct field names to the user-facing field names used in
// validation details.
var FieldLabels = map[string]string{
	"UserType":     "user_type",
	"FullName":     "full_name",
	"Email":        "email",
	"Phone":        "phone",
	"Age":          "age",
	"Objective":    "objective",
	"Education":    "education",
	"Experience":   "experience",
	"Skills":       "skills",
	"ContactEmail": "contact_email",
	"ContactPhone": "contact_phone",
	"IsPublished":  "is_published",
	"Title":        "title",
	"Description":  "description",
	"Requirements": "requirements",
	"SkillsRequired": "skills_required",
	"Location":     "location",
	"ContactInfo":  "contact_info",
	"IsActive":     "is_active",
	"JobID":        "job_id",
	"ResumeID":     "resume_id",
	"Status":       "status",
	"Password":     "password",
}

// FormatValidationErrors converts validator.ValidationErrors into the
// per-field details array of the error envelope.
func FormatValidationErrors(err error) []FieldDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]FieldDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, FieldDetail{
			Field:   fieldLabel(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return details
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", label, param)
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", label, param)
		}
		return fmt.Sprintf("%s deve ser no máximo %s", label, param)
	case "gte":
		return fmt.Sprintf("%s deve ser no mínimo %s", label, param)
	case "lte":
		return fmt.Sprintf("%s deve ser no máximo %s", label, param)
	case "email":
		return fmt.Sprintf("%s deve ser um e-mail válido", label)
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "valid_phone":
		return fmt.Sprintf("%s deve ser um telefone válido", label)
	default:
		return fmt.Sprintf("%s é inválido (%s)", label, e.Tag())
	}
}

func fieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return strings.ToLower(fieldName)
}
