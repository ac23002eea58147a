/*
   Copyright 2025 The RESPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

import (
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  BAD_REQUEST  ", "BAD_REQUEST"},
		{"to upper", "bad_request", "BAD_REQUEST"},
		{"dash to underscore", "NOT-FOUND", "NOT_FOUND"},
		{"mixed", "  validation-error  ", "VALIDATION_ERROR"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_PreservesDeclaredForm(t *testing.T) {
	// Parse never rewrites: whatever casing and separators the declaration
	// uses travel to the wire byte for byte.
	tests := []struct {
		name string
		in   string
	}{
		{"upper snake", "BAD_REQUEST"},
		{"mixed case", "ResourceGone"},
		{"lower", "conflict"},
		{"dash", "validation-error"},
		{"dotted", "bad.request"},
		{"two chars", "OK"},
		{"single char", "E"},
		{"leading digit", "4XX_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != Code(tt.in) {
				t.Fatalf("Parse(%q) = %q, want the input verbatim", tt.in, got)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"space inside", "BAD REQUEST"},
		{"leading space", " BAD_REQUEST"},
		{"tab", "BAD\tREQUEST"},
		{"non-ascii", "ERRÖR"},
		{"control byte", "BAD\x01REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCodeInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		"BAD_REQUEST",
		"NotFound",
		"conflict",
		"OK",
		"E",
		"NOT-FOUND",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",            // empty
		"BAD REQUEST", // space
		"ERRÖR",       // non-ASCII
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE")
}

func TestMustParse_SucceedsVerbatim(t *testing.T) {
	c := MustParse("not_found")
	if c != Code("not_found") {
		t.Fatalf("MustParse(valid) = %q, want %q", c, "not_found")
	}
}

func TestCode_String(t *testing.T) {
	c := Code("INTERNAL_SERVER_ERROR")
	if c.String() != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("String() = %q, want %q", c.String(), "INTERNAL_SERVER_ERROR")
	}
}

func TestCode_MarshalText(t *testing.T) {
	c := Code("BadRequest")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "BadRequest" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "BadRequest")
	}

	// invalid code should fail MarshalText
	invalid := Code("has space")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  not-found  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	// Surrounding whitespace is trimmed; the token itself is kept verbatim.
	if c != Code("not-found") {
		t.Fatalf("UnmarshalText() = %q, want %q", c, "not-found")
	}

	// invalid
	var bad Code
	if err := bad.UnmarshalText([]byte("   ")); err == nil {
		t.Fatalf("UnmarshalText() expected error for blank input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestBuiltinCodes_AreValid(t *testing.T) {
	builtins := []Code{
		BadRequest, ValidationError, NotFound, Conflict,
		AuthenticationError, PermissionDenied,
		TooManyRequests, ServiceUnavailable, Timeout,
		InternalServerError, UnknownError,
	}
	for _, c := range builtins {
		if err := Validate(c); err != nil {
			t.Fatalf("builtin code %q must be valid: %v", c, err)
		}
	}
}
