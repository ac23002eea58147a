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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Code is the validated representation of an error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated values.
//
// A Code is opaque: the declared string travels to the response body exactly
// as given, byte for byte. Validation only guarantees the value is a
// non-empty printable ASCII token; casing and separators are the declarer's
// choice. Upper-snake-case is the recommended convention (see Normalize and
// the built-in constants in codes.go), never a requirement.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every directly resolved
// variant MUST carry a non-empty code.
type Code string

var (
	// ErrCodeInvalid is returned when a value cannot be validated as a verr
	// code.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code format" vs "this is some other error".
	ErrCodeInvalid = errors.New("verr: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided" and is valid
// to store in declarations that resolve through nesting or a custom function.
// Callers that require a non-empty code should explicitly call Validate.
var Empty Code = ""

// Parse validates a declared code string and returns it as a Code, verbatim.
//
// No rewriting happens here: "ResourceGone" stays "ResourceGone" and "OK"
// stays "OK". Callers that want the recommended upper-snake form must opt in
// with Normalize before parsing.
func Parse(s string) (Code, error) {
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// recommended upper-snake-case form.
//
// This is an explicit opt-in, never applied by Parse or by the resolver: a
// declared code reaches the wire exactly as written. Normalize only performs
// obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is valid: non-empty, printable
// ASCII, no whitespace. The empty code ("") is considered invalid.
//
// Any casing and any printable separator are accepted: "BAD_REQUEST",
// "BadRequest", "bad.request" and "OK" are all valid codes. The upper-snake
// convention is enforced by nothing stronger than the built-in constants.
func Validate(c Code) error {
	return validate(string(c))
}

// validate is a helper that checks whether the provided string is a valid code.
//
// A code is a token for machine consumption: every byte must be printable
// ASCII and must not be a space, so the value survives headers, logs and
// client-side switch statements unquoted.
func validate(s string) error {
	if s == "" {
		return ErrCodeInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return ErrCodeInvalid
		}
	}
	return nil
}

// String returns the string representation of the code, exactly as declared.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Surrounding whitespace is trimmed (wire-level hygiene); the remaining text
// is validated and assigned verbatim.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
