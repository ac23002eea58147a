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

// Context is the partially resolved description of one error occurrence, as
// seen at the response boundary.
//
// This type intentionally uses plain strings and ints (not the internal
// code.Code / template.Template value types) so that it can live in the
// public "apis" layer and be consumed by adapters and user-supplied custom
// response functions without extra imports.
//
// A Context is a value: it is handed over by copy and never retained by the
// materializer after the response is built.
type Context struct {
	// Err is the error occurrence this context was resolved from. For custom
	// response functions this is the escape hatch to the full error value.
	Err error

	// Status is the resolved HTTP status. Zero means "not resolved"; the
	// default response construction substitutes 500.
	Status int

	// Code is the resolved machine-readable error code. Empty means "not
	// resolved"; the default response construction substitutes "UNKNOWN_ERROR".
	Code string

	// Message is the resolved human-readable message. Empty means "not
	// resolved"; the default response construction substitutes a generic
	// sentence.
	Message string

	// Resolved reports whether Status/Code/Message came from a declared
	// strategy. It is false when the materializer fell back to the fixed
	// generic response, and false in a custom-function context whose variant
	// declared no underlying status/code or nesting.
	Resolved bool
}

// CustomFunc is a user-supplied function that fully replaces standard
// response construction for a variant or an error type.
//
// It receives the occurrence (ctx.Err) together with the best-effort resolved
// status/code/message of the would-be standard response, and must return a
// complete transport-level Response. The materializer uses the returned
// response verbatim: no retries, no wrapping, no post-processing.
type CustomFunc func(ctx Context) Response

// Responder is implemented by error types that can resolve themselves to a
// response context.
//
// It is the capability that makes an error participate in nested delegation:
// when a variant delegates to a wrapped inner error, the materializer asks
// the inner value for its own Context through this interface. Error types
// produced by a verr resolver table implement it already; hand-written error
// types can implement it directly.
//
// Inner errors that do not implement Responder are still handled — they get
// the fixed generic 500 response with their textual description as message.
type Responder interface {
	error

	// ResponseContext returns the error's resolved response context.
	// Implementations MUST be pure and total: no I/O, no panic, same output
	// for the same value.
	ResponseContext() Context
}
