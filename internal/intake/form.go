// ABOUTME: Quick profile form: name, age, birth date, and three label lists
// ABOUTME: Produces a ProfileInput once the basic fields validate
package intake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harper/carenotes/internal/models"
)

// Form collects a profile without the wizard's sensory and communication steps
type Form struct {
	info          ChildInfo
	diagnoses     []string
	sensitivities []string
	preferences   []string
	errors        FieldErrors
}

// NewForm returns an empty form
func NewForm() *Form {
	return &Form{
		diagnoses:     []string{},
		sensitivities: []string{},
		preferences:   []string{},
		errors:        FieldErrors{},
	}
}

// Set assigns a raw string to a field and clears that field's error only
func (f *Form) Set(field, value string) error {
	if err := setChildField(&f.info, field, value); err != nil {
		return err
	}
	f.errors.Clear(field)
	return nil
}

// AddLabel appends label to a list unless blank or already present
func (f *Form) AddLabel(list, label string) (bool, error) {
	l, err := f.list(list)
	if err != nil {
		return false, err
	}
	return addLabel(l, label), nil
}

// RemoveLabel drops label from a list
func (f *Form) RemoveLabel(list, label string) (bool, error) {
	l, err := f.list(list)
	if err != nil {
		return false, err
	}
	return removeLabel(l, label), nil
}

// AddLabels adds every label in a comma-separated string
func (f *Form) AddLabels(list, csv string) error {
	for _, label := range SplitLabels(csv) {
		if _, err := f.AddLabel(list, label); err != nil {
			return err
		}
	}
	return nil
}

// Labels returns a copy of a list
func (f *Form) Labels(list string) []string {
	l, err := f.list(list)
	if err != nil {
		return nil
	}
	return append([]string{}, *l...)
}

func (f *Form) list(name string) (*[]string, error) {
	switch name {
	case ListDiagnoses:
		return &f.diagnoses, nil
	case ListSensitivities:
		return &f.sensitivities, nil
	case ListPreferences:
		return &f.preferences, nil
	}
	return nil, fmt.Errorf("unknown label list %q", name)
}

// Errors returns the errors from the last Submit that have not been cleared
func (f *Form) Errors() FieldErrors {
	out := FieldErrors{}
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submit validates and returns the profile input, or the FieldErrors
func (f *Form) Submit() (models.ProfileInput, error) {
	f.errors = ValidateChildInfo(f.info, false)
	if !f.errors.Empty() {
		return models.ProfileInput{}, f.Errors()
	}
	return models.ProfileInput{
		Name:          strings.TrimSpace(f.info.Name),
		Age:           f.info.Age,
		Gender:        f.info.Gender,
		DateOfBirth:   f.info.DateOfBirth,
		Diagnoses:     append([]string{}, f.diagnoses...),
		Sensitivities: append([]string{}, f.sensitivities...),
		Preferences:   append([]string{}, f.preferences...),
	}, nil
}

func parseAge(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
