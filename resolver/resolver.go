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
	"respx.dev/verr/code"
	"respx.dev/verr/template"
)

// New resolves an error-type declaration into an immutable Table snapshot.
//
// The resulting Table is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained instance — no shared references to
// global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Apply the declaration options to a fresh builder.
//  2. Check type-level invariants (non-empty name, at least one variant,
//     unique variant names).
//  3. Per variant: validate the declared code and template,
//     check the status range and the status/code pairing rule.
//  4. Per variant: select exactly one strategy (custom > nested > direct),
//     validating payload arity for nesting and template arity for direct
//     resolution.
//  5. Freeze everything into an immutable Table (fresh allocations).
//
// Any violation is returned as a *DefinitionError naming the type and the
// offending variant. Definition errors are fatal by contract: surface them
// before the service starts.
func New(typeName string, opts ...Option) (*Table, error) {
	// (1) Apply options to a fresh builder.
	b := newBuilder(typeName)
	for _, opt := range opts {
		opt(b)
	}

	// (2) Type-level invariants.
	if b.typeName == "" {
		return nil, defErr("", "", ErrEmptyTypeName)
	}
	if len(b.variants) == 0 {
		return nil, defErr(b.typeName, "", ErrNoVariants)
	}

	strategies := make(map[string]*Strategy, len(b.variants))
	order := make([]string, 0, len(b.variants))

	for _, v := range b.variants {
		if v.name == "" {
			return nil, defErr(b.typeName, "", ErrEmptyVariantName)
		}
		if _, dup := strategies[v.name]; dup {
			return nil, defErr(b.typeName, v.name, ErrDuplicateVariant)
		}

		// (3) Attribute validation.
		s, err := resolveVariant(b, v)
		if err != nil {
			return nil, err
		}

		strategies[v.name] = s
		order = append(order, v.name)
	}

	// (5) The map and slice above are freshly allocated per build and the
	// strategies are never mutated after this point, so the Table is an
	// immutable snapshot by construction.
	return &Table{
		typeName:   b.typeName,
		strategies: strategies,
		order:      order,
	}, nil
}

// MustNew is the panic-on-error variant of New. It is the recommended form
// for package-level table declarations, turning every definition error into a
// startup failure:
//
//	var orderErrors = resolver.MustNew("OrderError", ...)
func MustNew(typeName string, opts ...Option) *Table {
	t, err := New(typeName, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// resolveVariant validates one declaration and assigns exactly one strategy.
func resolveVariant(b *builder, v *variantDecl) (*Strategy, error) {
	// Status/code pairing holds unconditionally: declaring one without the
	// other is an error even when a custom function would win anyway.
	if v.statusSet && !v.codeSet {
		return nil, defErr(b.typeName, v.name, ErrStatusWithoutCode)
	}
	if v.codeSet && !v.statusSet {
		return nil, defErr(b.typeName, v.name, ErrCodeWithoutStatus)
	}
	if v.statusSet && (v.status < 100 || v.status > 599) {
		return nil, defErr(b.typeName, v.name, ErrStatusOutOfRange)
	}

	var c code.Code
	if v.codeSet {
		parsed, err := code.Parse(v.rawCode)
		if err != nil {
			return nil, defErr(b.typeName, v.name, err)
		}
		c = parsed
	}

	tmpl, err := template.Parse(v.rawTemplate)
	if err != nil {
		return nil, defErr(b.typeName, v.name, err)
	}

	// (4) Underlying strategy, ignoring any custom function.
	var under *Strategy
	switch {
	case v.nested && v.statusSet:
		// One primary strategy per variant; only a custom function may
		// coexist with the others.
		return nil, defErr(b.typeName, v.name, ErrConflictingStrategies)

	case v.nested:
		if v.payload != PayloadError {
			return nil, defErr(b.typeName, v.name, ErrNestedPayload)
		}
		under = &Strategy{
			Kind:     KindNested,
			Payload:  v.payload,
			Template: tmpl, // declared but never rendered
		}

	case v.statusSet:
		if tmpl == template.Empty {
			return nil, defErr(b.typeName, v.name, ErrMissingTemplate)
		}
		if template.Refs(tmpl) > v.payload.slots() {
			return nil, defErr(b.typeName, v.name, ErrTemplateArity)
		}
		under = &Strategy{
			Kind:     KindDirect,
			Payload:  v.payload,
			Status:   v.status,
			Code:     c,
			Template: tmpl,
		}
	}

	// Custom function: variant-level, else type-level fallback. It takes
	// absolute precedence; the underlying resolution (if any) is retained
	// for the function's best-effort context.
	fn := v.fn
	if fn == nil {
		fn = b.typeFn
	}
	if fn != nil {
		return &Strategy{
			Kind:    KindCustom,
			Payload: v.payload,
			Fn:      fn,
			Under:   under,
		}, nil
	}

	if under == nil {
		return nil, defErr(b.typeName, v.name, ErrNoStrategy)
	}
	return under, nil
}

// Table is the immutable resolution result for one declared error type: a
// mapping from variant name to exactly one Strategy. Lookups are constant
// time and safe for concurrent use once constructed.
type Table struct {
	// typeName is the declared error type name, used in diagnostics and
	// descriptor export.
	typeName string

	// strategies maps variant name to its resolved strategy.
	strategies map[string]*Strategy

	// order preserves declaration order for deterministic iteration.
	order []string
}

// TypeName returns the declared error type name.
func (t *Table) TypeName() string {
	return t.typeName
}

// Strategy returns the resolved strategy for the given variant, or false if
// the variant was never declared.
func (t *Table) Strategy(variant string) (*Strategy, bool) {
	s, ok := t.strategies[variant]
	return s, ok
}

// Variants returns the variant names in declaration order. The returned
// slice is a copy; callers may keep or modify it.
func (t *Table) Variants() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
