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

// variantDecl is one variant declaration as accumulated by the options,
// before validation. Raw strings are kept as given; validation happens in New
// so that every problem is reported as a DefinitionError with the variant's
// name attached.
type variantDecl struct {
	// name is the variant tag, unique within the type.
	name string

	// status and statusSet record the declared HTTP status. The boolean is
	// needed because 0 is not a valid "unset" marker for ints coming from
	// options.
	status    int
	statusSet bool

	// rawCode and codeSet record the declared machine-readable code prior to
	// validation.
	rawCode string
	codeSet bool

	// rawTemplate records the declared message template prior to validation.
	rawTemplate string

	// nested marks delegation to the wrapped inner error.
	nested bool

	// fn is the variant-level custom response function, overriding any
	// type-level one.
	fn apis.CustomFunc

	// payload describes what the variant carries (nothing, a plain value, or
	// a wrapped inner error).
	payload PayloadKind
}

// builder accumulates a whole error-type declaration. It is transient: New
// applies the options to a fresh builder, validates, and freezes the result
// into an immutable Table. Nothing user-provided is retained by reference.
type builder struct {
	// typeName is the declared error type name.
	typeName string

	// variants holds the declarations in declaration order. Order matters
	// only for deterministic iteration (Explain, descriptor export), not for
	// resolution semantics.
	variants []*variantDecl

	// typeFn is the type-level custom response function, applied to every
	// variant that has no variant-level one.
	typeFn apis.CustomFunc
}

// newBuilder creates an empty builder for the given type name.
func newBuilder(typeName string) *builder {
	return &builder{typeName: typeName}
}
