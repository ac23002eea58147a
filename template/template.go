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

package template

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Template is the canonical, validated representation of a message template.
//
// It is deliberately a string newtype rather than a pre-compiled structure:
// templates are short and rendered rarely (only when an error actually
// reaches the response boundary), so a validated string keeps the type
// trivially comparable, serializable and embeddable in descriptors.
//
// A Template accepted by Parse is guaranteed to render without error.
type Template string

// MaxLength is the maximum length for a valid template. It is a guard
// against accidentally unbounded strings (a misplaced file dump, a generated
// blob), set far beyond any plausible response message rather than at a
// prose-length bound: multi-sentence templates are unusual but valid.
const MaxLength = 64 * 1024

var (
	// ErrTemplateInvalidLength is returned when a template exceeds MaxLength.
	ErrTemplateInvalidLength = errors.New("verr: invalid template length")

	// ErrTemplateUnclosed is returned when a '{' opens a placeholder that is
	// never closed, e.g. "oops {0".
	ErrTemplateUnclosed = errors.New("verr: unclosed placeholder in template")

	// ErrTemplateBadIndex is returned when a placeholder does not contain a
	// decimal index, e.g. "{}" or "{name}". Only positional references are
	// supported.
	ErrTemplateBadIndex = errors.New("verr: invalid placeholder index in template")

	// ErrTemplateStrayBrace is returned for an unmatched '}' outside a
	// placeholder. Use "}}" for a literal brace.
	ErrTemplateStrayBrace = errors.New("verr: stray '}' in template")
)

// Ensure Template implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Template)(nil)
	_ encoding.TextUnmarshaler = (*Template)(nil)
)

// Empty is the zero-value template, meaning "not provided".
var Empty Template = ""

// Parse validates the placeholder syntax of s and returns it as a canonical
// Template. The text itself is taken verbatim: unlike codes, messages are
// user-facing prose and are never normalized.
//
// Parse accepts the empty string and returns template.Empty without error.
// This is what makes Template an "optional" part of a variant declaration.
func Parse(s string) (Template, error) {
	if s == "" {
		return Empty, nil
	}
	if len(s) > MaxLength {
		return Empty, ErrTemplateInvalidLength
	}
	if _, err := scan(s, nil); err != nil {
		return Empty, err
	}
	return Template(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level template constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if t == Empty {
		panic("verr: empty template in MustParse")
	}
	return t
}

// Validate checks whether the provided Template is in canonical form.
//
// The empty template ("") is considered valid here, because the whole point
// of this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(t Template) error {
	if t == Empty {
		return nil
	}
	if len(t) > MaxLength {
		return ErrTemplateInvalidLength
	}
	_, err := scan(string(t), nil)
	return err
}

// Refs returns the number of payload slots the template references, i.e. the
// highest placeholder index plus one. A template without placeholders returns 0.
//
// Refs on an invalid template returns 0; validate first.
func Refs(t Template) int {
	n, err := scan(string(t), nil)
	if err != nil {
		return 0
	}
	return n
}

// Render substitutes the template's placeholders with the given payload
// values, formatted with fmt.Sprint. "{{" and "}}" render as literal braces.
//
// Render never fails: a placeholder whose index has no corresponding value is
// emitted verbatim. Resolution-time arity checks make that case unreachable
// for declarations that passed validation.
func (t Template) Render(values ...any) string {
	var b strings.Builder
	b.Grow(len(t) + 16)
	_, _ = scan(string(t), func(lit string, idx int) {
		if idx < 0 {
			b.WriteString(lit)
			return
		}
		if idx < len(values) {
			b.WriteString(fmt.Sprint(values[idx]))
			return
		}
		// Out-of-range reference: keep the placeholder visible rather than
		// silently dropping it.
		fmt.Fprintf(&b, "{%d}", idx)
	})
	return b.String()
}

// String returns the raw template text.
func (t Template) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty template as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (t Template) MarshalText() ([]byte, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	if t == Empty {
		return []byte{}, nil
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It validates the provided text before assigning.
func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// scan walks the template once, invoking emit for each literal run
// (idx == -1) and each placeholder (idx >= 0). It returns the number of
// referenced payload slots (max index + 1). emit may be nil when only
// validation or counting is needed.
func scan(s string, emit func(lit string, idx int)) (refs int, err error) {
	lit := func(text string) {
		if emit != nil && text != "" {
			emit(text, -1)
		}
	}
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				lit("{")
				i += 2
				continue
			}
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return 0, ErrTemplateUnclosed
			}
			idx, ok := parseIndex(s[i+1 : i+end])
			if !ok {
				return 0, ErrTemplateBadIndex
			}
			if idx+1 > refs {
				refs = idx + 1
			}
			if emit != nil {
				emit("", idx)
			}
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				lit("}")
				i += 2
				continue
			}
			return 0, ErrTemplateStrayBrace
		default:
			next := strings.IndexAny(s[i:], "{}")
			if next < 0 {
				lit(s[i:])
				i = len(s)
				continue
			}
			lit(s[i : i+next])
			i += next
		}
	}
	return refs, nil
}

// parseIndex parses a non-empty decimal placeholder index. Two digits is
// already beyond any single-payload variant, so the bound is generous.
func parseIndex(s string) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
