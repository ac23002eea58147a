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

package resolver

import (
	"fmt"
	"strings"
)

// Explain produces a textual trace of how a variant was resolved.
//
// This is primarily a diagnostic tool: it shows which strategy the variant
// carries and, for custom variants, the best-effort underlying resolution the
// custom function will see.
//
// Example output:
//
//	type="OrderError" variant="BadRequest"
//	strategy: direct status=400 code="BAD_REQUEST" template="Bad request: {0}" payload=value
//
// Notes:
//   - strategy ∈ {direct | nested | custom}
//   - an unknown variant renders a single "unknown variant" line
func (t *Table) Explain(variant string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "type=%q variant=%q\n", t.typeName, variant)

	s, ok := t.strategies[variant]
	if !ok {
		_, _ = fmt.Fprintln(&b, "strategy: unknown variant")
		return strings.TrimSuffix(b.String(), "\n")
	}

	_, _ = fmt.Fprintln(&b, explainStrategy("strategy", s))
	if s.Kind == KindCustom && s.Under != nil {
		_, _ = fmt.Fprintln(&b, explainStrategy("under", s.Under))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// explainStrategy formats one strategy line with the given label.
func explainStrategy(label string, s *Strategy) string {
	switch s.Kind {
	case KindDirect:
		return fmt.Sprintf("%s: direct status=%d code=%q template=%q payload=%s",
			label, s.Status, s.Code, s.Template, s.Payload)
	case KindNested:
		return fmt.Sprintf("%s: nested payload=%s (delegates to wrapped error)", label, s.Payload)
	case KindCustom:
		if s.Under == nil {
			return fmt.Sprintf("%s: custom payload=%s (no underlying resolution)", label, s.Payload)
		}
		return fmt.Sprintf("%s: custom payload=%s", label, s.Payload)
	default:
		return fmt.Sprintf("%s: unknown", label)
	}
}
