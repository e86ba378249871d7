// ABOUTME: Tests for the interactive profile wizard driven by scripted stdin
// ABOUTME: Covers the full walk, validation retries, defaults, and cancellation
package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harper/carenotes/internal/models"
)

func wizardScript(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// elevenSensory answers every sensory axis with the default
var elevenSensory = []string{"", "", "", "", "", "", "", "", "", "", ""}

func TestWizardCreatesProfile(t *testing.T) {
	setupEnv(t)

	lines := []string{
		"Ana", "7", "2017-05-02", "feminino",
		"TEA, TDAH", "Ruídos altos", "Música calma",
		"alta", "", "", "baixa", "", "", "", "", "", "", "",
		"frases_curtas", "PECS", "Rotina visual",
		"s",
	}
	stdout, stderr, err := runCLIWithInput(t, wizardScript(lines...), "profile", "wizard")
	if err != nil {
		t.Fatalf("wizard failed: %v\nstderr: %s\nstdout: %s", err, stderr, stdout)
	}
	if !strings.Contains(stdout, "Created profile Ana") {
		t.Errorf("missing confirmation:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Etapa 1 de 6") || !strings.Contains(stdout, "(83% concluído)") {
		t.Errorf("missing step progress:\n%s", stdout)
	}

	out := mustRun(t, "--format", "json", "profile", "show")
	var p models.Profile
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if p.Gender != models.GenderFemale || p.Age != 7 {
		t.Errorf("unexpected basics %+v", p)
	}
	if len(p.Diagnoses) != 2 || p.Diagnoses[0] != "TEA" {
		t.Errorf("Diagnoses = %v", p.Diagnoses)
	}
	sensory := p.Sensory()
	if sensory.Auditory.LoudNoises != models.SensitivityHigh {
		t.Errorf("LoudNoises = %q, want alta", sensory.Auditory.LoudNoises)
	}
	if sensory.Visual.FlashingLights != models.SensitivityLow {
		t.Errorf("FlashingLights = %q, want baixa", sensory.Visual.FlashingLights)
	}
	if sensory.Tactile.LightTouch != models.SensitivityMedium {
		t.Errorf("LightTouch = %q, want media", sensory.Tactile.LightTouch)
	}
	comm := p.Communication()
	if comm.VerbalLevel != models.VerbalShortPhrases {
		t.Errorf("VerbalLevel = %q", comm.VerbalLevel)
	}
	if len(comm.PreferredMethods) != 1 || comm.PreferredMethods[0] != "PECS" {
		t.Errorf("PreferredMethods = %v", comm.PreferredMethods)
	}
	if len(comm.Strategies) != 1 || comm.Strategies[0] != "Rotina visual" {
		t.Errorf("Strategies = %v", comm.Strategies)
	}
}

func TestWizardRetriesInvalidChildInfo(t *testing.T) {
	setupEnv(t)

	lines := []string{
		// first pass: missing name and age out of range
		"", "25", "2017-05-02", "masculino",
		// second pass asks only the failing fields
		"Leo", "5",
		"", "", "",
	}
	lines = append(lines, elevenSensory...)
	lines = append(lines, "", "", "", "s")

	stdout, _, err := runCLIWithInput(t, wizardScript(lines...), "profile", "wizard")
	if err != nil {
		t.Fatalf("wizard failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Nome é obrigatório") {
		t.Errorf("expected name error to be shown:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Created profile Leo") {
		t.Errorf("expected Leo to be created:\n%s", stdout)
	}

	out := mustRun(t, "--format", "json", "profile", "show")
	var p models.Profile
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if p.Age != 5 || p.Gender != models.GenderMale {
		t.Errorf("unexpected profile %+v", p)
	}
	if p.Communication().VerbalLevel != models.VerbalSimpleWords {
		t.Errorf("default verbal level should be palavras_simples, got %q", p.Communication().VerbalLevel)
	}
}

func TestWizardRepromptsInvalidLevel(t *testing.T) {
	setupEnv(t)

	lines := []string{"Ana", "7", "2017-05-02", "outro", "", "", "", "muito"}
	lines = append(lines, elevenSensory...)
	lines = append(lines, "gritos", "nao_verbal", "", "", "s")

	stdout, _, err := runCLIWithInput(t, wizardScript(lines...), "profile", "wizard")
	if err != nil {
		t.Fatalf("wizard failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, `unknown sensitivity level "muito"`) {
		t.Errorf("expected sensitivity re-prompt:\n%s", stdout)
	}
	if !strings.Contains(stdout, `unknown verbal level "gritos"`) {
		t.Errorf("expected verbal level re-prompt:\n%s", stdout)
	}
}

func TestWizardDeclined(t *testing.T) {
	setupEnv(t)

	lines := []string{"Ana", "7", "2017-05-02", "feminino", "", "", ""}
	lines = append(lines, elevenSensory...)
	lines = append(lines, "", "", "", "n")

	_, _, err := runCLIWithInput(t, wizardScript(lines...), "profile", "wizard")
	if err != errWizardAborted {
		t.Fatalf("err = %v, want errWizardAborted", err)
	}

	if out := mustRun(t, "profile", "list"); !strings.Contains(out, "No profiles yet") {
		t.Errorf("declined wizard should not create a profile:\n%s", out)
	}
}

func TestWizardEndOfInput(t *testing.T) {
	setupEnv(t)

	_, _, err := runCLIWithInput(t, wizardScript("Ana", "7"), "profile", "wizard")
	if err != errWizardAborted {
		t.Errorf("err = %v, want errWizardAborted", err)
	}
}
