// ABOUTME: CLI commands to list, create, select, and show child profiles
// ABOUTME: Creation goes through the intake form; the wizard lives in wizard.go
package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/intake"
	"github.com/harper/carenotes/internal/models"
)

var (
	profileName          string
	profileAge           string
	profileDateOfBirth   string
	profileGender        string
	profileDiagnoses     []string
	profileSensitivities []string
	profilePreferences   []string
)

// NewProfileCmd creates the profile command group
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage child profiles",
		Long: `Manage child profiles.

A profile holds the child's basic information, diagnoses, sensitivities,
preferences, sensory ratings, and communication level. When only one
profile exists it is selected automatically; otherwise pass --profile.

Examples:
  carenotes profile
  carenotes profile create --name Ana --age 7 --dob 2017-05-02
  carenotes profile wizard
  carenotes profile show --profile <id>`,
		RunE: runProfileList,
	}

	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileCreateCmd())
	cmd.AddCommand(newProfileSelectCmd())
	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(NewWizardCmd())

	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE:  runProfileList,
	}
}

func runProfileList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profiles := a.controller.Profiles()
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), profiles)
	}

	if len(profiles) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No profiles yet. Create one with: carenotes profile create\n")
		}
		return nil
	}

	activeID := ""
	if p := a.controller.ActiveProfile(); p != nil {
		activeID = p.ID
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, " \tNAME\tAGE\tDIAGNOSES\tCREATED\tID\n")
	fmt.Fprintf(w, " \t----\t---\t---------\t-------\t--\n")
	now := time.Now()
	for _, p := range profiles {
		marker := " "
		if p.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			marker,
			truncate(p.Name, 24),
			p.Age,
			truncate(joinOrDash(p.Diagnoses), 30),
			formatTime(p.CreatedAt, now),
			p.ID)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d profile(s)\n", len(profiles))
	}
	return nil
}

func newProfileCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile from flags",
		Long: `Create a profile from flags and make it active.

Name, age (1-18), and date of birth (YYYY-MM-DD) are required.
List flags can be repeated or given comma-separated values.

Examples:
  carenotes profile create --name Ana --age 7 --dob 2017-05-02
  carenotes profile create --name Leo --age 5 --dob 2019-01-10 \
    --diagnosis "Transtorno do Espectro Autista (TEA)" --preference "Música calma"`,
		RunE: runProfileCreate,
	}

	cmd.Flags().StringVar(&profileName, "name", "", "Child's name")
	cmd.Flags().StringVar(&profileAge, "age", "", "Age in years (1-18)")
	cmd.Flags().StringVar(&profileDateOfBirth, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&profileGender, "gender", "", "Gender: masculino, feminino, outro, nao_informado")
	cmd.Flags().StringArrayVar(&profileDiagnoses, "diagnosis", nil, "Add a diagnosis (can be repeated)")
	cmd.Flags().StringArrayVar(&profileSensitivities, "sensitivity", nil, "Add a sensitivity (can be repeated)")
	cmd.Flags().StringArrayVar(&profilePreferences, "preference", nil, "Add a preference (can be repeated)")

	return cmd
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	form := intake.NewForm()
	fields := []struct{ field, value string }{
		{intake.FieldName, profileName},
		{intake.FieldAge, profileAge},
		{intake.FieldDateOfBirth, profileDateOfBirth},
		{intake.FieldGender, profileGender},
	}
	for _, f := range fields {
		if err := form.Set(f.field, f.value); err != nil {
			return err
		}
	}
	lists := []struct {
		list   string
		values []string
	}{
		{intake.ListDiagnoses, profileDiagnoses},
		{intake.ListSensitivities, profileSensitivities},
		{intake.ListPreferences, profilePreferences},
	}
	for _, l := range lists {
		for _, v := range l.values {
			if err := form.AddLabels(l.list, v); err != nil {
				return err
			}
		}
	}

	in, err := form.Submit()
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.controller.CreateProfile(in)

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s)\n", p.Name, p.ID)
	return nil
}

func newProfileSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Check a profile ID and show its dashboard summary",
		Long: `Check that a profile exists and show its dashboard summary.

The selection is not stored between runs; with several profiles,
pass --profile <id> to each command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.controller.SelectProfile(args[0]); err != nil {
				return err
			}
			return printProfile(cmd, a.controller.ActiveProfile(), a.controller.Stats().Total)
		},
	}
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active profile in detail",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.requireActive()
			if err != nil {
				return err
			}
			return printProfile(cmd, p, a.controller.Stats().Total)
		},
	}
}

func printProfile(cmd *cobra.Command, p *models.Profile, entries int) error {
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), p)
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FIELD\tVALUE\n")
	fmt.Fprintf(w, "-----\t-----\n")
	fmt.Fprintf(w, "ID\t%s\n", p.ID)
	fmt.Fprintf(w, "Nome\t%s\n", p.Name)
	fmt.Fprintf(w, "Idade\t%d anos\n", p.Age)
	if p.Gender != "" {
		fmt.Fprintf(w, "Gênero\t%s\n", p.Gender.Label())
	}
	fmt.Fprintf(w, "Nascimento\t%s\n", p.DateOfBirth)
	fmt.Fprintf(w, "Diagnósticos\t%s\n", joinOrDash(p.Diagnoses))
	fmt.Fprintf(w, "Sensibilidades\t%s\n", joinOrDash(p.Sensitivities))
	fmt.Fprintf(w, "Preferências\t%s\n", joinOrDash(p.Preferences))
	fmt.Fprintf(w, "Registros no diário\t%d\n", entries)
	w.Flush()

	if quiet {
		return nil
	}

	sensory := p.Sensory()
	fmt.Fprintf(out, "\nPerfil sensorial\n")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, axis := range models.SensoryAxes {
		level, _ := sensory.Level(axis.Category, axis.Axis)
		fmt.Fprintf(w, "  %s\t%s\n", axis.Label, level.Label())
	}
	w.Flush()

	comm := p.Communication()
	fmt.Fprintf(out, "\nComunicação\n")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nível verbal\t%s\n", comm.VerbalLevel.Label())
	fmt.Fprintf(w, "  Métodos\t%s\n", joinOrDash(comm.PreferredMethods))
	fmt.Fprintf(w, "  Estratégias\t%s\n", joinOrDash(comm.Strategies))
	w.Flush()
	return nil
}
