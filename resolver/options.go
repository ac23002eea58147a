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
)

// Option configures an error-type declaration at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Table.
type Option func(*builder)

// VariantOption configures a single variant declaration.
type VariantOption func(*variantDecl)

// WithVariant declares one variant of the error type. Variants are recorded
// in declaration order; the order affects only deterministic iteration
// (Explain output, descriptor export), never resolution.
func WithVariant(name string, opts ...VariantOption) Option {
	return func(b *builder) {
		v := &variantDecl{name: name, payload: PayloadNone}
		for _, opt := range opts {
			opt(v)
		}
		b.variants = append(b.variants, v)
	}
}

// WithTypeFunc installs a type-level custom response function, applied to
// every variant that does not carry its own WithFunc. A non-nil type-level
// function makes all such variants resolve to the custom strategy.
func WithTypeFunc(fn apis.CustomFunc) Option {
	return func(b *builder) { b.typeFn = fn }
}

// WithStatus declares the variant's HTTP status. It must be accompanied by
// WithCode; a status alone is a definition error.
func WithStatus(status int) VariantOption {
	return func(v *variantDecl) {
		v.status = status
		v.statusSet = true
	}
}

// WithCode declares the variant's machine-readable error code. It must be
// accompanied by WithStatus; a code alone is a definition error. The value is
// validated during New and used exactly as declared — no casing or separator
// rewriting (apply code.Normalize first if you want the upper-snake form).
func WithCode(c string) VariantOption {
	return func(v *variantDecl) {
		v.rawCode = c
		v.codeSet = true
	}
}

// WithTemplate declares the variant's message template, e.g.
// "Bad request: {0}". Required for directly resolved variants; on a nested
// variant it is documentation only and never rendered.
func WithTemplate(tmpl string) VariantOption {
	return func(v *variantDecl) { v.rawTemplate = tmpl }
}

// WithNested marks the variant as delegating response construction to its
// wrapped inner error. Requires WithPayload(PayloadError).
func WithNested() VariantOption {
	return func(v *variantDecl) { v.nested = true }
}

// WithFunc installs a variant-level custom response function. It takes
// absolute precedence over a status/code pair, the nested flag, and any
// type-level function.
func WithFunc(fn apis.CustomFunc) VariantOption {
	return func(v *variantDecl) { v.fn = fn }
}

// WithPayload declares what the variant carries: nothing (the default), one
// plain value, or one wrapped inner error.
func WithPayload(k PayloadKind) VariantOption {
	return func(v *variantDecl) { v.payload = k }
}
