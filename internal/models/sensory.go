// ABOUTME: Sensory profile and communication level records nested inside Profile
// ABOUTME: Three-level sensitivity ordinal with "media" as the fallback everywhere
package models

import (
	"fmt"
	"strings"
)

// SensitivityLevel is a three-level ordinal rating for one sensory axis
type SensitivityLevel string

const (
	SensitivityLow    SensitivityLevel = "baixa"
	SensitivityMedium SensitivityLevel = "media"
	SensitivityHigh   SensitivityLevel = "alta"
)

// Valid reports whether l is a known level
func (l SensitivityLevel) Valid() bool {
	return l == SensitivityLow || l == SensitivityMedium || l == SensitivityHigh
}

// OrDefault returns l, or SensitivityMedium when l is empty or unknown
func (l SensitivityLevel) OrDefault() SensitivityLevel {
	if !l.Valid() {
		return SensitivityMedium
	}
	return l
}

// Label returns the display label
func (l SensitivityLevel) Label() string {
	switch l {
	case SensitivityLow:
		return "Baixa"
	case SensitivityMedium:
		return "Moderada"
	case SensitivityHigh:
		return "Alta"
	}
	return "Não definida"
}

// ParseSensitivityLevel accepts a wire value or display label, case-insensitive
func ParseSensitivityLevel(s string) (SensitivityLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range []SensitivityLevel{SensitivityLow, SensitivityMedium, SensitivityHigh} {
		if s == string(l) || s == strings.ToLower(l.Label()) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown sensitivity level %q", s)
}

// Rank orders levels low < medium < high
func (l SensitivityLevel) Rank() int {
	switch l.OrDefault() {
	case SensitivityLow:
		return 1
	case SensitivityHigh:
		return 3
	}
	return 2
}

// Sense categories of a SensoryProfile
const (
	SenseAuditory   = "auditory"
	SenseVisual     = "visual"
	SenseTactile    = "tactile"
	SenseVestibular = "vestibular"
)

// SensoryAxis names one rated axis of a SensoryProfile
type SensoryAxis struct {
	Category string
	Axis     string
	Label    string
}

// SensoryAxes lists every rated axis in display order
var SensoryAxes = []SensoryAxis{
	{SenseAuditory, "loudNoises", "Ruídos altos"},
	{SenseAuditory, "backgroundNoise", "Ruído de fundo"},
	{SenseVisual, "brightLights", "Luzes brilhantes"},
	{SenseVisual, "flashingLights", "Luzes piscantes"},
	{SenseVisual, "visualPatterns", "Padrões visuais"},
	{SenseTactile, "clothingTextures", "Texturas de roupas"},
	{SenseTactile, "lightTouch", "Toque leve"},
	{SenseTactile, "foodTextures", "Texturas de alimentos"},
	{SenseVestibular, "movement", "Movimento"},
	{SenseVestibular, "heights", "Alturas"},
	{SenseVestibular, "spinning", "Girar"},
}

type AuditoryProfile struct {
	LoudNoises      SensitivityLevel `json:"loudNoises"`
	SpecificSounds  []string         `json:"specificSounds"`
	BackgroundNoise SensitivityLevel `json:"backgroundNoise"`
}

type VisualProfile struct {
	BrightLights   SensitivityLevel `json:"brightLights"`
	FlashingLights SensitivityLevel `json:"flashingLights"`
	VisualPatterns SensitivityLevel `json:"visualPatterns"`
}

type TactileProfile struct {
	ClothingTextures SensitivityLevel `json:"clothingTextures"`
	LightTouch       SensitivityLevel `json:"lightTouch"`
	FoodTextures     SensitivityLevel `json:"foodTextures"`
}

type VestibularProfile struct {
	Movement SensitivityLevel `json:"movement"`
	Heights  SensitivityLevel `json:"heights"`
	Spinning SensitivityLevel `json:"spinning"`
}

// SensoryProfile rates four sense categories
type SensoryProfile struct {
	Auditory   AuditoryProfile   `json:"auditory"`
	Visual     VisualProfile     `json:"visual"`
	Tactile    TactileProfile    `json:"tactile"`
	Vestibular VestibularProfile `json:"vestibular"`
}

// DefaultSensoryProfile rates every axis "media"
func DefaultSensoryProfile() SensoryProfile {
	return SensoryProfile{
		Auditory:   AuditoryProfile{LoudNoises: SensitivityMedium, SpecificSounds: []string{}, BackgroundNoise: SensitivityMedium},
		Visual:     VisualProfile{BrightLights: SensitivityMedium, FlashingLights: SensitivityMedium, VisualPatterns: SensitivityMedium},
		Tactile:    TactileProfile{ClothingTextures: SensitivityMedium, LightTouch: SensitivityMedium, FoodTextures: SensitivityMedium},
		Vestibular: VestibularProfile{Movement: SensitivityMedium, Heights: SensitivityMedium, Spinning: SensitivityMedium},
	}
}

// WithDefaults returns a copy with every empty or unknown axis set to "media"
func (s SensoryProfile) WithDefaults() SensoryProfile {
	s.Auditory.LoudNoises = s.Auditory.LoudNoises.OrDefault()
	s.Auditory.BackgroundNoise = s.Auditory.BackgroundNoise.OrDefault()
	s.Auditory.SpecificSounds = append([]string{}, s.Auditory.SpecificSounds...)
	s.Visual.BrightLights = s.Visual.BrightLights.OrDefault()
	s.Visual.FlashingLights = s.Visual.FlashingLights.OrDefault()
	s.Visual.VisualPatterns = s.Visual.VisualPatterns.OrDefault()
	s.Tactile.ClothingTextures = s.Tactile.ClothingTextures.OrDefault()
	s.Tactile.LightTouch = s.Tactile.LightTouch.OrDefault()
	s.Tactile.FoodTextures = s.Tactile.FoodTextures.OrDefault()
	s.Vestibular.Movement = s.Vestibular.Movement.OrDefault()
	s.Vestibular.Heights = s.Vestibular.Heights.OrDefault()
	s.Vestibular.Spinning = s.Vestibular.Spinning.OrDefault()
	return s
}

// Set assigns level to the named axis of a sense category.
// Returns false when the category/axis pair is unknown.
func (s *SensoryProfile) Set(category, axis string, level SensitivityLevel) bool {
	ptr := s.axis(category, axis)
	if ptr == nil {
		return false
	}
	*ptr = level
	return true
}

// Level reads the named axis, defaulting to "media"
func (s SensoryProfile) Level(category, axis string) (SensitivityLevel, bool) {
	ptr := s.axis(category, axis)
	if ptr == nil {
		return "", false
	}
	return ptr.OrDefault(), true
}

func (s *SensoryProfile) axis(category, axis string) *SensitivityLevel {
	switch category {
	case SenseAuditory:
		switch axis {
		case "loudNoises":
			return &s.Auditory.LoudNoises
		case "backgroundNoise":
			return &s.Auditory.BackgroundNoise
		}
	case SenseVisual:
		switch axis {
		case "brightLights":
			return &s.Visual.BrightLights
		case "flashingLights":
			return &s.Visual.FlashingLights
		case "visualPatterns":
			return &s.Visual.VisualPatterns
		}
	case SenseTactile:
		switch axis {
		case "clothingTextures":
			return &s.Tactile.ClothingTextures
		case "lightTouch":
			return &s.Tactile.LightTouch
		case "foodTextures":
			return &s.Tactile.FoodTextures
		}
	case SenseVestibular:
		switch axis {
		case "movement":
			return &s.Vestibular.Movement
		case "heights":
			return &s.Vestibular.Heights
		case "spinning":
			return &s.Vestibular.Spinning
		}
	}
	return nil
}

// VerbalLevel describes how the child communicates verbally
type VerbalLevel string

const (
	VerbalNonVerbal        VerbalLevel = "nao_verbal"
	VerbalSimpleWords      VerbalLevel = "palavras_simples"
	VerbalShortPhrases     VerbalLevel = "frases_curtas"
	VerbalFullConversation VerbalLevel = "conversacao_completa"
)

// Valid reports whether v is a known verbal level
func (v VerbalLevel) Valid() bool {
	switch v {
	case VerbalNonVerbal, VerbalSimpleWords, VerbalShortPhrases, VerbalFullConversation:
		return true
	}
	return false
}

// Label returns the display label
func (v VerbalLevel) Label() string {
	switch v {
	case VerbalNonVerbal:
		return "Não Verbal"
	case VerbalSimpleWords:
		return "Palavras Simples"
	case VerbalShortPhrases:
		return "Frases Curtas"
	case VerbalFullConversation:
		return "Conversação Completa"
	}
	return "Não definido"
}

// ParseVerbalLevel accepts a wire value or display label, case-insensitive
func ParseVerbalLevel(s string) (VerbalLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range []VerbalLevel{VerbalNonVerbal, VerbalSimpleWords, VerbalShortPhrases, VerbalFullConversation} {
		if s == string(v) || s == strings.ToLower(v.Label()) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown verbal level %q", s)
}

// CommunicationLevel captures verbal level and supporting methods
type CommunicationLevel struct {
	VerbalLevel      VerbalLevel `json:"verbalLevel"`
	PreferredMethods []string    `json:"preferredMethods"`
	Strategies       []string    `json:"strategies"`
}

// DefaultCommunicationLevel is "simple words" with no methods or strategies
func DefaultCommunicationLevel() CommunicationLevel {
	return CommunicationLevel{
		VerbalLevel:      VerbalSimpleWords,
		PreferredMethods: []string{},
		Strategies:       []string{},
	}
}
