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

// Package verr turns declared error variants into deterministic HTTP error
// responses.
//
// An error type is declared once, per variant, with the status, code and
// message template it should produce (see verr/resolver); occurrences of it
// are created at the point of failure with New or Wrap and materialized into
// a response at the boundary with Respond:
//
//	var orderErrors = resolver.MustNew("OrderError",
//	    resolver.WithVariant("BadRequest",
//	        resolver.WithStatus(400),
//	        resolver.WithCode("BAD_REQUEST"),
//	        resolver.WithTemplate("Bad request: {0}"),
//	        resolver.WithPayload(resolver.PayloadValue),
//	    ),
//	)
//
//	err := verr.New(orderErrors, "BadRequest", "foo")
//	resp := verr.Respond(err)
//	// resp.Status == 400
//	// resp.Body   == {"result":null,"error":{"code":"BAD_REQUEST","message":"Bad request: foo"}}
//
// Response construction is total: whatever the input — a declared occurrence,
// a deeply nested chain, an opaque foreign error, nil — Respond always
// produces exactly one well-formed response and never fails.
package verr

import (
	"fmt"

	"respx.dev/verr/apis"
	"respx.dev/verr/resolver"
)

// E is one concrete occurrence of a declared error type: which variant
// happened, and the payload it captured (a plain value or a wrapped inner
// error, depending on the variant's declaration).
//
// An E is created at the point of failure, consumed exactly once by the
// response boundary, and discarded. It is immutable after construction.
type E struct {
	// table is the frozen resolution table of the occurrence's error type.
	table *resolver.Table

	// variant is the tag the occurrence dispatches on.
	variant string

	// payload carries the captured value. For PayloadError variants it holds
	// the wrapped inner error; for PayloadValue, the template value; for
	// PayloadNone it is nil.
	payload any
}

// New creates an occurrence of the given variant with a captured payload
// value. Pass nil for variants declared with PayloadNone.
//
// New never fails: an unknown variant (or a nil table) yields an occurrence
// that materializes to the fixed generic 500 response. Declarations are
// validated at build time by the resolver; run-time construction stays total.
func New(t *resolver.Table, variant string, payload any) *E {
	return &E{table: t, variant: variant, payload: payload}
}

// Wrap creates an occurrence of the given variant around an inner error.
// This is the constructor for variants declared with PayloadError — both
// nested-delegating ones and direct ones that render the inner error's text.
func Wrap(t *resolver.Table, variant string, inner error) *E {
	return &E{table: t, variant: variant, payload: inner}
}

// Error implements the built-in error interface.
//
// The format for directly resolved variants is:
//
//	<code>: <message>
//
// Nested and custom variants fall back to the variant name with the payload's
// own description. This string is for logs; the response body is produced by
// Respond, not by Error.
func (e *E) Error() string {
	if e == nil {
		return "<nil>"
	}
	s, ok := e.strategy()
	if ok && s.Kind == resolver.KindDirect {
		return fmt.Sprintf("%s: %s", s.Code, s.Template.Render(e.templateValues()...))
	}
	if inner := e.Unwrap(); inner != nil {
		return fmt.Sprintf("%s: %v", e.variant, inner)
	}
	if e.payload != nil {
		return fmt.Sprintf("%s: %v", e.variant, e.payload)
	}
	return e.variant
}

// Unwrap returns the wrapped inner error, enabling errors.Is / errors.As
// chains. It returns nil when the payload is not an error.
func (e *E) Unwrap() error {
	if e == nil {
		return nil
	}
	inner, ok := e.payload.(error)
	if !ok {
		return nil
	}
	return inner
}

// Variant returns the occurrence's variant tag.
func (e *E) Variant() string {
	if e == nil {
		return ""
	}
	return e.variant
}

// ResponseContext implements apis.Responder, letting occurrences of one
// declared type act as the delegation target of another. For custom-strategy
// variants this returns the best-effort underlying resolution; the custom
// function itself is invoked only by Respond.
func (e *E) ResponseContext() apis.Context {
	return Resolve(e)
}

// strategy looks up the occurrence's resolved strategy. The second return is
// false for unknown variants and nil tables.
func (e *E) strategy() (*resolver.Strategy, bool) {
	if e == nil || e.table == nil {
		return nil, false
	}
	return e.table.Strategy(e.variant)
}

// templateValues returns the payload values fed to the message template.
func (e *E) templateValues() []any {
	s, ok := e.strategy()
	if !ok || s.Payload == resolver.PayloadNone {
		return nil
	}
	return []any{e.payload}
}
