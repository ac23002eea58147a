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
	"respx.dev/verr/apis"
	"respx.dev/verr/code"
	"respx.dev/verr/template"
)

// PayloadKind describes what a variant carries alongside its tag.
type PayloadKind uint8

const (
	// PayloadNone marks a bare variant with no payload value.
	PayloadNone PayloadKind = iota

	// PayloadValue marks a variant carrying one plain value, available to the
	// message template as {0}.
	PayloadValue

	// PayloadError marks a variant wrapping one inner error. Required for
	// nested delegation; for direct variants the inner error's textual
	// description is available to the template as {0}.
	PayloadError
)

// String returns the lowercase name of the payload kind.
func (k PayloadKind) String() string {
	switch k {
	case PayloadNone:
		return "none"
	case PayloadValue:
		return "value"
	case PayloadError:
		return "error"
	default:
		return "unknown"
	}
}

// slots returns how many payload values the kind provides to a template.
func (k PayloadKind) slots() int {
	if k == PayloadNone {
		return 0
	}
	return 1
}

// Kind is the tag of a resolved strategy.
type Kind uint8

const (
	// KindDirect emits the declared status/code with the rendered template.
	KindDirect Kind = iota + 1

	// KindNested delegates response construction to the wrapped inner error.
	KindNested

	// KindCustom hands construction to a user-supplied function.
	KindCustom
)

// String returns the lowercase name of the strategy kind.
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindNested:
		return "nested"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Strategy is the resolved response-construction decision for one variant.
//
// It is produced once per variant at build time, stored in the frozen Table,
// and consumed by the materializer at every occurrence of that variant. It is
// never mutated after New returns.
type Strategy struct {
	// Kind selects which of the field groups below is meaningful.
	Kind Kind

	// Payload records the declared payload shape. The materializer uses it to
	// decide what to feed the template and where to find the inner error.
	Payload PayloadKind

	// Status and Code are set for KindDirect (and on the Under strategy of a
	// custom variant that co-declared them).
	Status int
	Code   code.Code

	// Template is the validated message template for KindDirect. For
	// KindNested it may carry the declared (documentation-only) template; the
	// materializer discards it in favor of the inner error's message.
	Template template.Template

	// Fn is the custom response function for KindCustom.
	Fn apis.CustomFunc

	// Under is the would-be direct or nested strategy beneath a custom one,
	// used to populate the best-effort fields of the function's context.
	// Nil when the custom variant declared nothing else.
	Under *Strategy
}
