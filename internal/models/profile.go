// ABOUTME: Profile represents one child with demographic, sensory, and communication attributes
// ABOUTME: JSON layout matches the persisted profiles collection, nested records are optional
package models

import (
	"fmt"
	"strings"
	"time"
)

// Gender is the self-reported gender selection from the intake wizard
type Gender string

const (
	GenderMale        Gender = "masculino"
	GenderFemale      Gender = "feminino"
	GenderOther       Gender = "outro"
	GenderUndisclosed Gender = "nao_informado"
)

// Valid reports whether g is one of the known gender values
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUndisclosed:
		return true
	}
	return false
}

// Label returns the display label used by the presentation layer
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Masculino"
	case GenderFemale:
		return "Feminino"
	case GenderOther:
		return "Outro"
	case GenderUndisclosed:
		return "Prefiro não informar"
	}
	return ""
}

// ParseGender accepts a wire value or display label, case-insensitive
func ParseGender(s string) (Gender, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther, GenderUndisclosed} {
		if s == string(g) || s == strings.ToLower(g.Label()) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Profile is a stored child profile.
// Records written before gender, sensory, or communication data existed
// simply lack those fields; use Sensory() and Communication() to read them.
type Profile struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Age                int                 `json:"age"`
	Gender             Gender              `json:"gender,omitempty"`
	DateOfBirth        string              `json:"dateOfBirth"`
	Diagnoses          []string            `json:"diagnoses"`
	Avatar             string              `json:"avatar,omitempty"`
	Sensitivities      []string            `json:"sensitivities"`
	Preferences        []string            `json:"preferences"`
	SensoryProfile     *SensoryProfile     `json:"sensoryProfile,omitempty"`
	CommunicationLevel *CommunicationLevel `json:"communicationLevel,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ProfileInput is what callers supply when creating a profile.
// The identifier and timestamps are assigned by the controller.
type ProfileInput struct {
	Name               string
	Age                int
	Gender             Gender
	DateOfBirth        string
	Diagnoses          []string
	Avatar             string
	Sensitivities      []string
	Preferences        []string
	SensoryProfile     *SensoryProfile
	CommunicationLevel *CommunicationLevel
}

// NewProfile builds a Profile from input with the given id and creation time.
// CreatedAt and UpdatedAt are always equal on a new profile.
func NewProfile(id string, in ProfileInput, now time.Time) Profile {
	now = now.UTC()
	return Profile{
		ID:                 id,
		Name:               in.Name,
		Age:                in.Age,
		Gender:             in.Gender,
		DateOfBirth:        in.DateOfBirth,
		Diagnoses:          nonNil(in.Diagnoses),
		Avatar:             in.Avatar,
		Sensitivities:      nonNil(in.Sensitivities),
		Preferences:        nonNil(in.Preferences),
		SensoryProfile:     in.SensoryProfile,
		CommunicationLevel: in.CommunicationLevel,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Sensory returns the sensory profile with absent axes filled by defaults.
// The stored record is not modified.
func (p *Profile) Sensory() SensoryProfile {
	if p.SensoryProfile == nil {
		return DefaultSensoryProfile()
	}
	return p.SensoryProfile.WithDefaults()
}

// Communication returns the communication level, defaulting when absent
func (p *Profile) Communication() CommunicationLevel {
	if p.CommunicationLevel == nil {
		return DefaultCommunicationLevel()
	}
	c := *p.CommunicationLevel
	if !c.VerbalLevel.Valid() {
		c.VerbalLevel = VerbalSimpleWords
	}
	c.PreferredMethods = nonNil(c.PreferredMethods)
	c.Strategies = nonNil(c.Strategies)
	return c
}

// FindProfile returns the index of the profile with id, or -1
func FindProfile(profiles []Profile, id string) int {
	for i := range profiles {
		if profiles[i].ID == id {
			return i
		}
	}
	return -1
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
