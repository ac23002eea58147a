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

package apis

// ErrorDescriptor is a flat, transport-friendly description of one resolved
// variant of a declared error type.
//
// This type intentionally uses strings (not the internal Code / Template
// value types) so that it can live in the public "apis" layer and be used by
// documentation generators, logging and user-defined error catalogs.
//
// Descriptors are derived from a frozen resolver table (see verr/adapter);
// the shape below is what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Type is the declared error type name, e.g. "OrderError".
	Type string `json:"type"`

	// Variant is the variant name, unique within the type.
	Variant string `json:"variant"`

	// Strategy is the resolved construction strategy: "direct", "nested" or
	// "custom".
	Strategy string `json:"strategy"`

	// HTTPStatus is the declared HTTP status for direct variants. A value of
	// 0 means "not applicable" (nested and custom variants without an
	// underlying direct declaration).
	HTTPStatus int `json:"http_status,omitempty"`

	// Code is the declared machine-readable code for direct variants.
	// Empty when not applicable.
	Code string `json:"code,omitempty"`

	// Template is the declared message template for direct variants.
	// Empty when not applicable.
	Template string `json:"template,omitempty"`
}
