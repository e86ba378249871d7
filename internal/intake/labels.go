// ABOUTME: Label lists edited by the intake flows (diagnoses, sensitivities, preferences)
// ABOUTME: Labels are trimmed and deduplicated; free-text input is comma-separated
package intake

import (
	"strings"

	"github.com/harper/carenotes/internal/models"
)

// Label list names
const (
	ListDiagnoses     = "diagnoses"
	ListSensitivities = "sensitivities"
	ListPreferences   = "preferences"
	ListMethods       = "preferredMethods"
	ListStrategies    = "strategies"
)

// SplitLabels turns "a, b,,a" into ["a", "b"]
func SplitLabels(s string) []string {
	return models.CleanLabels(strings.Split(s, ","))
}

// Suggestions returns the catalog of common labels for list
func Suggestions(list string) []string {
	switch list {
	case ListDiagnoses:
		return models.CommonDiagnoses
	case ListSensitivities:
		return models.CommonSensitivities
	case ListPreferences:
		return models.CommonPreferences
	case ListMethods:
		return models.CommonCommunicationMethods
	case ListStrategies:
		return models.CommonStrategies
	}
	return nil
}

func addLabel(list *[]string, label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || models.ContainsLabel(*list, label) {
		return false
	}
	*list = append(*list, label)
	return true
}

func removeLabel(list *[]string, label string) bool {
	label = strings.TrimSpace(label)
	for i, l := range *list {
		if l == label {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
