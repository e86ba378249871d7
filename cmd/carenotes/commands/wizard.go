// ABOUTME: Interactive onboarding wizard that builds a full profile from prompts
// ABOUTME: Reads answers line by line from stdin so it can be scripted
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/intake"
	"github.com/harper/carenotes/internal/models"
)

var errWizardAborted = errors.New("wizard cancelled")

// NewWizardCmd creates the profile wizard command
func NewWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Create a profile step by step",
		Long: `Create a profile step by step: basic information, diagnoses,
sensory profile, and communication.

Press Enter to keep a default. Lists are comma-separated.`,
		RunE: runWizard,
	}
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errWizardAborted
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}
	w := intake.NewWizard()

	for !w.IsFinal() {
		fmt.Fprintf(p.out, "\nEtapa %d de %d · %s (%d%% concluído)\n", w.Index()+1, len(intake.Steps), w.Step().Title(), w.Progress())

		var err error
		switch w.Step() {
		case intake.StepWelcome:
			fmt.Fprintln(p.out, "Vamos criar o perfil da sua criança.")
		case intake.StepChildInfo:
			err = askChildInfo(p, w)
		case intake.StepDiagnosis:
			err = askLists(p, w, []labelPrompt{
				{intake.ListDiagnoses, "Diagnósticos"},
				{intake.ListSensitivities, "Sensibilidades"},
				{intake.ListPreferences, "Preferências"},
			})
		case intake.StepSensoryProfile:
			err = askSensory(p, w)
		case intake.StepCommunication:
			err = askCommunication(p, w)
		}
		if err != nil {
			return err
		}

		if !w.Next() {
			for field, msg := range w.Errors() {
				fmt.Fprintf(p.out, "  %s: %s\n", field, msg)
			}
		}
	}

	in, err := w.Complete()
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "\nEtapa %d de %d · %s\n", len(intake.Steps), len(intake.Steps), intake.StepFinal.Title())
	fmt.Fprintf(p.out, "%s, %d anos, nascido(a) em %s\n", in.Name, in.Age, in.DateOfBirth)
	confirm, err := p.ask("Criar perfil? (s/n)", "s")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.ToLower(confirm), "s") && !strings.HasPrefix(strings.ToLower(confirm), "y") {
		return errWizardAborted
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.controller.CreateProfile(in)
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), profile)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s)\n", profile.Name, profile.ID)
	return nil
}

func askChildInfo(p *prompter, w *intake.Wizard) error {
	data := w.Data()
	errs := w.Errors()
	fields := []struct {
		field, label, current string
	}{
		{intake.FieldName, "Nome da criança", data.Name},
		{intake.FieldAge, "Idade", ageString(data.Age)},
		{intake.FieldDateOfBirth, "Data de nascimento (AAAA-MM-DD)", data.DateOfBirth},
		{intake.FieldGender, "Gênero (masculino, feminino, outro, nao_informado)", ""},
	}
	for _, f := range fields {
		// on a retry only the fields with errors are asked again
		if !errs.Empty() && !errs.Has(f.field) {
			continue
		}
		answer, err := p.ask(f.label, f.current)
		if err != nil {
			return err
		}
		if err := w.SetField(f.field, answer); err != nil {
			return err
		}
	}
	return nil
}

func ageString(age int) string {
	if age == 0 {
		return ""
	}
	return fmt.Sprintf("%d", age)
}

type labelPrompt struct {
	list  string
	label string
}

func askLists(p *prompter, w *intake.Wizard, prompts []labelPrompt) error {
	for _, lp := range prompts {
		fmt.Fprintf(p.out, "  Sugestões: %s\n", truncate(strings.Join(intake.Suggestions(lp.list), ", "), 100))
		answer, err := p.ask(lp.label+" (separados por vírgula)", "")
		if err != nil {
			return err
		}
		for _, label := range intake.SplitLabels(answer) {
			if _, err := w.AddLabel(lp.list, label); err != nil {
				return err
			}
		}
	}
	return nil
}

func askSensory(p *prompter, w *intake.Wizard) error {
	fmt.Fprintln(p.out, "  Sensibilidade: baixa, media ou alta")
	for _, axis := range models.SensoryAxes {
		for {
			answer, err := p.ask("  "+axis.Label, string(models.SensitivityMedium))
			if err != nil {
				return err
			}
			level, err := models.ParseSensitivityLevel(answer)
			if err == nil {
				if err := w.SetSensory(axis.Category, axis.Axis, level); err != nil {
					return err
				}
				break
			}
			fmt.Fprintf(p.out, "  %v\n", err)
		}
	}
	return nil
}

func askCommunication(p *prompter, w *intake.Wizard) error {
	fmt.Fprintln(p.out, "  Nível verbal: nao_verbal, palavras_simples, frases_curtas, conversacao_completa")
	for {
		answer, err := p.ask("  Nível verbal", string(models.VerbalSimpleWords))
		if err != nil {
			return err
		}
		level, err := models.ParseVerbalLevel(answer)
		if err == nil {
			if err := w.SetVerbalLevel(level); err != nil {
				return err
			}
			break
		}
		fmt.Fprintf(p.out, "  %v\n", err)
	}
	return askLists(p, w, []labelPrompt{
		{intake.ListMethods, "Métodos de comunicação"},
		{intake.ListStrategies, "Estratégias"},
	})
}
