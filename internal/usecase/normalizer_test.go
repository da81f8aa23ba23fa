package usecase

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "already normalized", input: "old tom distillery", want: "old tom distillery"},
		{name: "lowercases", input: "OLD TOM Distillery", want: "old tom distillery"},
		{name: "collapses whitespace runs", input: "old   tom\t\tdistillery", want: "old tom distillery"},
		{name: "collapses newlines", input: "old tom\ndistillery\r\n45% alc/vol", want: "old tom distillery 45% alc/vol"},
		{name: "trims edges", input: "  old tom  ", want: "old tom"},
		{name: "only whitespace", input: " \n\t ", want: ""},
		{name: "keeps percent and unit symbols", input: "45% ABV, 750 mL", want: "45% abv, 750 ml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"OLD   TOM\nDistillery",
		"  Kentucky Straight\tBourbon Whiskey  ",
		"45.5 % alc/vol\r\n750 mL",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple words", input: "Old Tom Distillery", want: []string{"old", "tom", "distillery"}},
		{name: "strips punctuation per word", input: "Kentucky Straight Bourbon, Whiskey.", want: []string{"kentucky", "straight", "bourbon", "whiskey"}},
		{name: "drops punctuation-only tokens", input: "old - tom", want: []string{"old", "tom"}},
		{name: "empty", input: "", want: []string{}},
		{name: "blank", input: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitWords(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
