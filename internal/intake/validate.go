// ABOUTME: Field-level validation for child information collected by the intake flows
// ABOUTME: Messages are the user-facing Portuguese strings shown next to each field
package intake

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harper/carenotes/internal/models"
)

// Field names shared by the form and the wizard
const (
	FieldName        = "name"
	FieldAge         = "age"
	FieldDateOfBirth = "dateOfBirth"
	FieldGender      = "gender"
)

// Age bounds accepted for a child profile
const (
	MinAge = 1
	MaxAge = 18
)

// Validation messages
const (
	MsgNameRequired        = "Nome é obrigatório"
	MsgAgeRange            = "Idade deve ser entre 1 e 18 anos"
	MsgDateOfBirthRequired = "Data de nascimento é obrigatória"
	MsgDateOfBirthFormat   = "Data de nascimento deve estar no formato AAAA-MM-DD"
	MsgGenderRequired      = "Gênero é obrigatório"
	MsgGenderInvalid       = "Gênero inválido"
)

// FieldErrors maps a field name to its validation message
type FieldErrors map[string]string

// Has reports whether field has an error
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear removes the error for field
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

// Empty reports whether there are no errors
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Error lists every message sorted by field name
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// ChildInfo is the basic information step shared by both intake flows
type ChildInfo struct {
	Name        string
	Age         int
	DateOfBirth string
	Gender      models.Gender
}

// ValidateChildInfo checks the required basic fields. The wizard requires a
// gender; the quick form does not.
func ValidateChildInfo(info ChildInfo, requireGender bool) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(info.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if info.Age < MinAge || info.Age > MaxAge {
		errs[FieldAge] = MsgAgeRange
	}
	if strings.TrimSpace(info.DateOfBirth) == "" {
		errs[FieldDateOfBirth] = MsgDateOfBirthRequired
	} else if _, err := time.Parse(models.DateLayout, info.DateOfBirth); err != nil {
		errs[FieldDateOfBirth] = MsgDateOfBirthFormat
	}
	switch {
	case info.Gender == "" && requireGender:
		errs[FieldGender] = MsgGenderRequired
	case info.Gender != "" && !info.Gender.Valid():
		errs[FieldGender] = MsgGenderInvalid
	}
	return errs
}

// setChildField parses a raw value into info. Age strings that do not parse
// become 0 and fail validation later.
func setChildField(info *ChildInfo, field, value string) error {
	switch field {
	case FieldName:
		info.Name = value
	case FieldAge:
		info.Age = parseAge(value)
	case FieldDateOfBirth:
		info.DateOfBirth = strings.TrimSpace(value)
	case FieldGender:
		if strings.TrimSpace(value) == "" {
			info.Gender = ""
			return nil
		}
		g, err := models.ParseGender(value)
		if err != nil {
			// kept as typed so validation reports it
			g = models.Gender(strings.TrimSpace(value))
		}
		info.Gender = g
	default:
		return &UnknownFieldError{Field: field}
	}
	return nil
}

// UnknownFieldError is returned when setting a field the flow does not have
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}
