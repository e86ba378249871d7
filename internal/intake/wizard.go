// ABOUTME: Six-step onboarding wizard that builds a full profile with sensory and communication data
// ABOUTME: Only the child-info step gates progress; completion fills defaults for untouched fields
package intake

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/harper/carenotes/internal/models"
)

// ErrNotFinalStep is returned by Complete before the wizard reaches its last step
var ErrNotFinalStep = errors.New("wizard is not on the final step")

// Step identifies a wizard page
type Step string

const (
	StepWelcome        Step = "welcome"
	StepChildInfo      Step = "childInfo"
	StepDiagnosis      Step = "diagnosis"
	StepSensoryProfile Step = "sensoryProfile"
	StepCommunication  Step = "communication"
	StepFinal          Step = "final"
)

// Steps in order
var Steps = []Step{StepWelcome, StepChildInfo, StepDiagnosis, StepSensoryProfile, StepCommunication, StepFinal}

// Title is the caption shown above the step
func (s Step) Title() string {
	switch s {
	case StepWelcome:
		return "Boas-vindas"
	case StepChildInfo:
		return "Informações Básicas"
	case StepDiagnosis:
		return "Diagnóstico"
	case StepSensoryProfile:
		return "Perfil Sensorial"
	case StepCommunication:
		return "Comunicação"
	case StepFinal:
		return "Finalização"
	}
	return string(s)
}

// Patch is a partial update merged into the wizard data. Nil fields are left alone.
type Patch struct {
	Name               *string
	Age                *int
	Gender             *models.Gender
	DateOfBirth        *string
	Diagnoses          []string
	Sensitivities      []string
	Preferences        []string
	SensoryProfile     *models.SensoryProfile
	CommunicationLevel *models.CommunicationLevel
}

// Wizard walks through the onboarding steps accumulating a profile
type Wizard struct {
	index         int
	info          ChildInfo
	diagnoses     []string
	sensitivities []string
	preferences   []string
	sensory       models.SensoryProfile
	communication models.CommunicationLevel
	errors        FieldErrors
}

// NewWizard starts on the welcome step with every sensory axis at "media"
// and verbal level "palavras_simples"
func NewWizard() *Wizard {
	return &Wizard{
		diagnoses:     []string{},
		sensitivities: []string{},
		preferences:   []string{},
		sensory:       models.DefaultSensoryProfile(),
		communication: models.DefaultCommunicationLevel(),
		errors:        FieldErrors{},
	}
}

// Step returns the current step
func (w *Wizard) Step() Step {
	return Steps[w.index]
}

// Index returns the zero-based position of the current step
func (w *Wizard) Index() int {
	return w.index
}

// Progress is the completion percentage shown in the header, counting the current step
func (w *Wizard) Progress() int {
	return int(math.Round(float64(w.index+1) / float64(len(Steps)) * 100))
}

// IsFirst reports whether the wizard is on the welcome step
func (w *Wizard) IsFirst() bool {
	return w.index == 0
}

// IsFinal reports whether the wizard is on the last step
func (w *Wizard) IsFinal() bool {
	return w.index == len(Steps)-1
}

// Errors returns the outstanding field errors
func (w *Wizard) Errors() FieldErrors {
	out := FieldErrors{}
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Apply merges a partial update
func (w *Wizard) Apply(p Patch) {
	if p.Name != nil {
		w.info.Name = *p.Name
	}
	if p.Age != nil {
		w.info.Age = *p.Age
	}
	if p.Gender != nil {
		w.info.Gender = *p.Gender
	}
	if p.DateOfBirth != nil {
		w.info.DateOfBirth = *p.DateOfBirth
	}
	if p.Diagnoses != nil {
		w.diagnoses = models.CleanLabels(p.Diagnoses)
	}
	if p.Sensitivities != nil {
		w.sensitivities = models.CleanLabels(p.Sensitivities)
	}
	if p.Preferences != nil {
		w.preferences = models.CleanLabels(p.Preferences)
	}
	if p.SensoryProfile != nil {
		w.sensory = *p.SensoryProfile
	}
	if p.CommunicationLevel != nil {
		w.communication = *p.CommunicationLevel
	}
}

// SetField assigns a raw child-info value and clears that field's error
func (w *Wizard) SetField(field, value string) error {
	if err := setChildField(&w.info, field, value); err != nil {
		return err
	}
	w.errors.Clear(field)
	return nil
}

// SetSensory rates one sensory axis
func (w *Wizard) SetSensory(category, axis string, level models.SensitivityLevel) error {
	if !level.Valid() {
		return fmt.Errorf("invalid sensitivity level %q", level)
	}
	if !w.sensory.Set(category, axis, level) {
		return fmt.Errorf("unknown sensory axis %s.%s", category, axis)
	}
	return nil
}

// SetVerbalLevel sets the communication verbal level
func (w *Wizard) SetVerbalLevel(v models.VerbalLevel) error {
	if !v.Valid() {
		return fmt.Errorf("invalid verbal level %q", v)
	}
	w.communication.VerbalLevel = v
	return nil
}

// AddLabel appends to one of the wizard's label lists
func (w *Wizard) AddLabel(list, label string) (bool, error) {
	l, err := w.list(list)
	if err != nil {
		return false, err
	}
	return addLabel(l, label), nil
}

// RemoveLabel drops label from one of the wizard's lists
func (w *Wizard) RemoveLabel(list, label string) (bool, error) {
	l, err := w.list(list)
	if err != nil {
		return false, err
	}
	return removeLabel(l, label), nil
}

func (w *Wizard) list(name string) (*[]string, error) {
	switch name {
	case ListDiagnoses:
		return &w.diagnoses, nil
	case ListSensitivities:
		return &w.sensitivities, nil
	case ListPreferences:
		return &w.preferences, nil
	case ListMethods:
		return &w.communication.PreferredMethods, nil
	case ListStrategies:
		return &w.communication.Strategies, nil
	}
	return nil, fmt.Errorf("unknown label list %q", name)
}

// Next advances one step. Leaving the child-info step requires valid
// basic information including gender; on failure the wizard stays put and
// Errors describes the problems. Returns whether the step changed.
func (w *Wizard) Next() bool {
	if w.IsFinal() {
		return false
	}
	if w.Step() == StepChildInfo {
		w.errors = ValidateChildInfo(w.info, true)
		if !w.errors.Empty() {
			return false
		}
	}
	w.index++
	return true
}

// Previous goes back one step. Returns whether the step changed.
func (w *Wizard) Previous() bool {
	if w.IsFirst() {
		return false
	}
	w.index--
	return true
}

// Data returns the profile as it would be completed now
func (w *Wizard) Data() models.ProfileInput {
	gender := w.info.Gender
	if gender == "" {
		gender = models.GenderUndisclosed
	}
	sensory := w.sensory.WithDefaults()
	comm := w.communication
	comm.PreferredMethods = append([]string{}, comm.PreferredMethods...)
	comm.Strategies = append([]string{}, comm.Strategies...)
	if !comm.VerbalLevel.Valid() {
		comm.VerbalLevel = models.VerbalSimpleWords
	}

	return models.ProfileInput{
		Name:               strings.TrimSpace(w.info.Name),
		Age:                w.info.Age,
		Gender:             gender,
		DateOfBirth:        w.info.DateOfBirth,
		Diagnoses:          append([]string{}, w.diagnoses...),
		Sensitivities:      append([]string{}, w.sensitivities...),
		Preferences:        append([]string{}, w.preferences...),
		SensoryProfile:     &sensory,
		CommunicationLevel: &comm,
	}
}

// Complete returns the finished profile input. It fails with ErrNotFinalStep
// unless the wizard is on the final step, and with FieldErrors if basic
// information was invalidated after the child-info step.
func (w *Wizard) Complete() (models.ProfileInput, error) {
	if !w.IsFinal() {
		return models.ProfileInput{}, ErrNotFinalStep
	}
	in := w.Data()
	errs := ValidateChildInfo(ChildInfo{Name: in.Name, Age: in.Age, DateOfBirth: in.DateOfBirth, Gender: in.Gender}, true)
	if !errs.Empty() {
		w.errors = errs
		return models.ProfileInput{}, errs
	}
	return in, nil
}
