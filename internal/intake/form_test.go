// ABOUTME: Tests for the quick profile form
// ABOUTME: Covers raw field parsing, per-field error clearing, and label lists
package intake

import (
	"errors"
	"reflect"
	"testing"

	"github.com/harper/carenotes/internal/models"
)

func TestFormSubmit(t *testing.T) {
	f := NewForm()
	mustSet(t, f.Set, FieldName, "  Ana ")
	mustSet(t, f.Set, FieldAge, "7")
	mustSet(t, f.Set, FieldDateOfBirth, "2017-05-02")
	if err := f.AddLabels(ListDiagnoses, "TEA, TDAH"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddLabel(ListPreferences, "Música calma"); err != nil {
		t.Fatal(err)
	}

	in, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	want := models.ProfileInput{
		Name:          "Ana",
		Age:           7,
		DateOfBirth:   "2017-05-02",
		Diagnoses:     []string{"TEA", "TDAH"},
		Sensitivities: []string{},
		Preferences:   []string{"Música calma"},
	}
	if !reflect.DeepEqual(in, want) {
		t.Errorf("Submit() = %+v, want %+v", in, want)
	}
}

func TestFormSubmitErrors(t *testing.T) {
	f := NewForm()
	mustSet(t, f.Set, FieldAge, "sete")

	_, err := f.Submit()

	var errs FieldErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	for _, field := range []string{FieldName, FieldAge, FieldDateOfBirth} {
		if !errs.Has(field) {
			t.Errorf("expected error for %s", field)
		}
	}
	if errs.Has(FieldGender) {
		t.Error("the quick form does not require a gender")
	}
}

func TestFormSetClearsOnlyThatField(t *testing.T) {
	f := NewForm()
	if _, err := f.Submit(); err == nil {
		t.Fatal("expected validation errors")
	}

	mustSet(t, f.Set, FieldName, "Leo")

	errs := f.Errors()
	if errs.Has(FieldName) {
		t.Error("name error should be cleared")
	}
	if !errs.Has(FieldAge) || !errs.Has(FieldDateOfBirth) {
		t.Errorf("other errors should remain, got %v", errs)
	}
}

func TestFormUnknownField(t *testing.T) {
	var ufe *UnknownFieldError
	if err := NewForm().Set("avatar", "x"); !errors.As(err, &ufe) {
		t.Errorf("expected UnknownFieldError, got %v", err)
	}
}

func TestFormLabels(t *testing.T) {
	f := NewForm()

	if added, _ := f.AddLabel(ListSensitivities, " Ruídos altos "); !added {
		t.Fatal("expected label to be added")
	}
	if added, _ := f.AddLabel(ListSensitivities, "Ruídos altos"); added {
		t.Error("duplicate label should be ignored")
	}
	if added, _ := f.AddLabel(ListSensitivities, "  "); added {
		t.Error("blank label should be ignored")
	}
	if removed, _ := f.RemoveLabel(ListSensitivities, "Ruídos altos"); !removed {
		t.Error("expected label to be removed")
	}
	if got := f.Labels(ListSensitivities); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	if _, err := f.AddLabel("colors", "azul"); err == nil {
		t.Error("expected error for unknown list")
	}
}

func TestFormGender(t *testing.T) {
	f := NewForm()
	mustSet(t, f.Set, FieldName, "Ana")
	mustSet(t, f.Set, FieldAge, "7")
	mustSet(t, f.Set, FieldDateOfBirth, "2017-05-02")
	mustSet(t, f.Set, FieldGender, "Feminino")

	in, err := f.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if in.Gender != models.GenderFemale {
		t.Errorf("expected feminino, got %q", in.Gender)
	}

	mustSet(t, f.Set, FieldGender, "robô")
	if _, err := f.Submit(); err == nil {
		t.Error("expected invalid gender to fail")
	}
}

func mustSet(t *testing.T, set func(string, string) error, field, value string) {
	t.Helper()
	if err := set(field, value); err != nil {
		t.Fatalf("set %s: %v", field, err)
	}
}
