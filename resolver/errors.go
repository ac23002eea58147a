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
	"errors"
	"fmt"
)

// Sentinel causes for definition errors. Each one names a distinct way a
// declaration can violate the resolution invariants, so callers and tests can
// use errors.Is to detect the exact violation.
var (
	// ErrEmptyTypeName is returned when New is called without a type name.
	ErrEmptyTypeName = errors.New("verr: error type name must not be empty")

	// ErrNoVariants is returned when an error type declares no variants at all.
	ErrNoVariants = errors.New("verr: error type declares no variants")

	// ErrEmptyVariantName is returned for a variant declared without a name.
	ErrEmptyVariantName = errors.New("verr: variant name must not be empty")

	// ErrDuplicateVariant is returned when two variants share a name.
	ErrDuplicateVariant = errors.New("verr: duplicate variant name")

	// ErrNoStrategy is returned when a variant declares neither a status/code
	// pair, nor the nested flag, nor a custom function.
	ErrNoStrategy = errors.New("verr: variant declares no resolvable strategy")

	// ErrStatusWithoutCode is returned when a status is declared alone.
	// Status and code must always be declared together.
	ErrStatusWithoutCode = errors.New("verr: status declared without a code")

	// ErrCodeWithoutStatus is returned when a code is declared alone.
	ErrCodeWithoutStatus = errors.New("verr: code declared without a status")

	// ErrStatusOutOfRange is returned for a status outside [100, 599].
	ErrStatusOutOfRange = errors.New("verr: status outside [100, 599]")

	// ErrConflictingStrategies is returned when the nested flag is combined
	// with a status/code pair. A variant picks one primary strategy; only a
	// custom function may coexist with the others (it wins).
	ErrConflictingStrategies = errors.New("verr: nested flag conflicts with status/code pair")

	// ErrNestedPayload is returned when a nested variant does not wrap
	// exactly one inner error value.
	ErrNestedPayload = errors.New("verr: nested variant must wrap exactly one inner error")

	// ErrMissingTemplate is returned for a direct variant without a message
	// template.
	ErrMissingTemplate = errors.New("verr: direct variant requires a message template")

	// ErrTemplateArity is returned when a template references more payload
	// slots than the variant declares.
	ErrTemplateArity = errors.New("verr: template references more payload slots than the variant declares")
)

// DefinitionError reports that a declared error type violates a resolution
// invariant. It pinpoints the type and, when applicable, the variant, and
// wraps one of the sentinel causes above (or a code/template parse error).
//
// Definition errors are fatal: they must be surfaced before the service
// starts, never at request time.
type DefinitionError struct {
	// Type is the declared error type name.
	Type string

	// Variant is the offending variant name. Empty for type-level problems
	// (no variants, empty type name).
	Variant string

	// Err is the underlying cause.
	Err error
}

// Error implements the built-in error interface.
func (e *DefinitionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Variant == "" {
		return fmt.Sprintf("verr: definition of %q: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("verr: definition of %q, variant %q: %v", e.Type, e.Variant, e.Err)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *DefinitionError) Unwrap() error { return e.Err }

// defErr is a small constructor helper used throughout validation.
func defErr(typeName, variant string, cause error) *DefinitionError {
	return &DefinitionError{Type: typeName, Variant: variant, Err: cause}
}
