// ABOUTME: Tests for sensory levels, verbal levels, and gender parsing
// ABOUTME: Checks wire values and display labels both parse
package models

import "testing"

func TestParseSensitivityLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    SensitivityLevel
		wantErr bool
	}{
		{"baixa", SensitivityLow, false},
		{" ALTA ", SensitivityHigh, false},
		{"Moderada", SensitivityMedium, false},
		{"media", SensitivityMedium, false},
		{"extrema", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSensitivityLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSensitivityLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSensitivityLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSensitivityRank(t *testing.T) {
	if !(SensitivityLow.Rank() < SensitivityMedium.Rank() && SensitivityMedium.Rank() < SensitivityHigh.Rank()) {
		t.Error("expected baixa < media < alta")
	}
	if SensitivityLevel("").Rank() != SensitivityMedium.Rank() {
		t.Error("empty level should rank as media")
	}
}

func TestParseVerbalLevel(t *testing.T) {
	if v, err := ParseVerbalLevel("frases curtas"); err != nil || v != VerbalShortPhrases {
		t.Errorf("expected frases_curtas, got %q (%v)", v, err)
	}
	if v, err := ParseVerbalLevel("nao_verbal"); err != nil || v != VerbalNonVerbal {
		t.Errorf("expected nao_verbal, got %q (%v)", v, err)
	}
	if _, err := ParseVerbalLevel("fluente"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestParseGender(t *testing.T) {
	if g, err := ParseGender("Feminino"); err != nil || g != GenderFemale {
		t.Errorf("expected feminino, got %q (%v)", g, err)
	}
	if g, err := ParseGender("nao_informado"); err != nil || g != GenderUndisclosed {
		t.Errorf("expected nao_informado, got %q (%v)", g, err)
	}
	if _, err := ParseGender("x"); err == nil {
		t.Error("expected error for unknown gender")
	}
}

func TestSensoryProfileSetAndLevel(t *testing.T) {
	s := DefaultSensoryProfile()

	if !s.Set(SenseTactile, "foodTextures", SensitivityHigh) {
		t.Fatal("expected known axis")
	}
	if got, ok := s.Level(SenseTactile, "foodTextures"); !ok || got != SensitivityHigh {
		t.Errorf("expected alta, got %q", got)
	}
	if s.Set(SenseAuditory, "specificSounds", SensitivityHigh) {
		t.Error("specificSounds is a list, not a level")
	}
	if _, ok := s.Level("smell", "anything"); ok {
		t.Error("expected unknown category")
	}
}

func TestSensoryAxesAreAddressable(t *testing.T) {
	s := DefaultSensoryProfile()
	for _, a := range SensoryAxes {
		if _, ok := s.Level(a.Category, a.Axis); !ok {
			t.Errorf("axis %s.%s is not addressable", a.Category, a.Axis)
		}
	}
	if len(SensoryAxes) != 11 {
		t.Errorf("expected 11 axes, got %d", len(SensoryAxes))
	}
}

func TestSensitivityOrDefault(t *testing.T) {
	tests := []struct {
		in   SensitivityLevel
		want SensitivityLevel
	}{
		{"", SensitivityMedium},
		{"extreme", SensitivityMedium},
		{SensitivityLow, SensitivityLow},
		{SensitivityHigh, SensitivityHigh},
	}
	for _, tt := range tests {
		if got := tt.in.OrDefault(); got != tt.want {
			t.Errorf("%q.OrDefault() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSensoryProfileWithDefaults(t *testing.T) {
	partial := SensoryProfile{Visual: VisualProfile{FlashingLights: SensitivityLow, BrightLights: "cegante"}}

	got := partial.WithDefaults()

	for _, axis := range SensoryAxes {
		want := SensitivityMedium
		if axis.Axis == "flashingLights" {
			want = SensitivityLow
		}
		ptr := got.axis(axis.Category, axis.Axis)
		if *ptr != want {
			t.Errorf("%s.%s = %q, want %q", axis.Category, axis.Axis, *ptr, want)
		}
	}
	if got.Auditory.SpecificSounds == nil {
		t.Error("specificSounds should never be nil")
	}
	if partial.Visual.BrightLights != "cegante" {
		t.Error("WithDefaults must not mutate the receiver")
	}
}
