// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package validation

import (
	"errors"
	"strings"
	"testing"
)

type innerStruct struct {
	Port int `koanf:"port" validate:"min=1,max=65535"`
}

type outerStruct struct {
	Name   string      `json:"name" validate:"required,max=5"`
	Level  string      `koanf:"level" validate:"oneof=debug info"`
	Items  []string    `json:"items" validate:"min=1"`
	Ratio  float64     `koanf:"ratio" validate:"gte=0,lte=1"`
	Server innerStruct `koanf:"server"`
	Plain  int         `validate:"gte=0"`
}

func validOuter() outerStruct {
	return outerStruct{
		Name:   "ok",
		Level:  "info",
		Items:  []string{"a"},
		Ratio:  0.5,
		Server: innerStruct{Port: 80},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	s := validOuter()
	if err := ValidateStruct(&s); err != nil {
		t.Errorf("ValidateStruct() unexpected error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*outerStruct)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"required", func(s *outerStruct) { s.Name = "" }, "name", "required", "name is required"},
		{"string max", func(s *outerStruct) { s.Name = "toolong" }, "name", "max", "name must be at most 5 characters"},
		{"oneof", func(s *outerStruct) { s.Level = "loud" }, "level", "oneof", "level must be one of: debug info"},
		{"slice min", func(s *outerStruct) { s.Items = nil }, "items", "min", "items must contain at least 1 items"},
		{"lte", func(s *outerStruct) { s.Ratio = 2 }, "ratio", "lte", "ratio must be less than or equal to 1"},
		{"nested", func(s *outerStruct) { s.Server.Port = 0 }, "server.port", "min", "server.port must be at least 1"},
		{"go name fallback", func(s *outerStruct) { s.Plain = -1 }, "Plain", "gte", "Plain must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validOuter()
			tt.modify(&s)
			err := ValidateStruct(&s)
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}

			var verrs Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation.Errors, got %T", err)
			}
			if !verrs.Has(tt.wantField, tt.wantTag) {
				t.Errorf("expected %s/%s in %+v", tt.wantField, tt.wantTag, verrs)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestErrors_JoinsMessages(t *testing.T) {
	t.Parallel()

	s := validOuter()
	s.Name = ""
	s.Server.Port = 70000

	err := ValidateStruct(&s)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "server.port must be at most 65535") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected messages joined with '; ': %s", msg)
	}
}

func TestErrors_Empty(t *testing.T) {
	t.Parallel()

	if got := (Errors{}).Error(); got != "validation failed" {
		t.Errorf("Errors{}.Error() = %q", got)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		t.Error("non-struct input should not produce field errors")
	}
}
