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

package verr

import (
	"net/http"

	"respx.dev/verr/apis"
	"respx.dev/verr/code"
	"respx.dev/verr/resolver"
)

// Fixed fallback used when a delegation target cannot resolve itself: an
// opaque foreign error, a missing inner value, an unknown variant, or a chain
// deeper than maxNestingDepth. The message in that case is the inner error's
// own textual description.
const (
	// FallbackStatus is the status of the generic fallback response.
	FallbackStatus = http.StatusInternalServerError

	// FallbackCode is the code of the generic fallback response.
	FallbackCode = code.InternalServerError
)

// Defaults substituted for fields a response context left unset. They apply
// when a participating error type returns a partially filled context.
const (
	// DefaultCode is substituted for an empty context code.
	DefaultCode = code.UnknownError

	// DefaultMessage is substituted for an empty context message.
	DefaultMessage = "An error occurred"
)

// maxNestingDepth caps nested delegation. Real chains are a handful of
// levels; anything deeper is treated like an unresolvable inner error, which
// keeps response construction total even for accidentally cyclic chains.
const maxNestingDepth = 32

// Resolve walks the error's resolution chain and returns its response
// context: the (status, code, message) triple the standard response is built
// from.
//
// Resolution order for one node:
//
//  1. a declared occurrence (*E) resolves by its variant's strategy — direct
//     renders the template, nested recurses into the wrapped inner error,
//     custom yields its best-effort underlying resolution (the function
//     itself is Respond's business);
//  2. any other error implementing apis.Responder supplies its own context;
//  3. everything else gets the fixed generic fallback with the error's text
//     as message.
//
// Resolve is pure and total: no I/O, no locks, never panics, same output for
// the same input. It is safe to call concurrently from any number of request
// paths.
func Resolve(err error) apis.Context {
	return resolveDepth(err, 0)
}

// resolveDepth is Resolve with an explicit delegation-depth counter.
func resolveDepth(err error, depth int) apis.Context {
	if err == nil {
		return apis.Context{Status: FallbackStatus, Code: string(FallbackCode), Message: DefaultMessage}
	}

	// 1. Declared occurrence: constant-time dispatch by variant tag.
	if e, ok := err.(*E); ok {
		s, ok := e.strategy()
		if !ok {
			return fallbackContext(err)
		}
		return contextFromStrategy(e, s, depth)
	}

	// 2. Foreign participating type.
	if r, ok := err.(apis.Responder); ok {
		ctx := r.ResponseContext()
		ctx.Err = err
		return ctx
	}

	// 3. Opaque error: fixed fallback.
	return fallbackContext(err)
}

// contextFromStrategy applies one resolved strategy to one occurrence.
func contextFromStrategy(e *E, s *resolver.Strategy, depth int) apis.Context {
	switch s.Kind {
	case resolver.KindDirect:
		return apis.Context{
			Err:      e,
			Status:   s.Status,
			Code:     s.Code.String(),
			Message:  s.Template.Render(e.templateValues()...),
			Resolved: true,
		}

	case resolver.KindNested:
		inner := e.Unwrap()
		if inner == nil || depth >= maxNestingDepth {
			return fallbackContext(e)
		}
		// The outer variant's own template, if any, is discarded: nested
		// delegation fully replaces the outer response, so callers observe
		// the innermost concrete diagnosis.
		return resolveDepth(inner, depth+1)

	case resolver.KindCustom:
		if s.Under == nil {
			return apis.Context{Err: e}
		}
		ctx := contextFromStrategy(e, s.Under, depth)
		ctx.Err = e
		return ctx

	default:
		return fallbackContext(e)
	}
}

// fallbackContext is the fixed generic resolution for anything that cannot
// resolve itself. The error's own description becomes the message.
func fallbackContext(err error) apis.Context {
	msg := DefaultMessage
	if err != nil {
		msg = err.Error()
	}
	return apis.Context{
		Err:     err,
		Status:  FallbackStatus,
		Code:    string(FallbackCode),
		Message: msg,
	}
}

// Materialize resolves the error and shapes the result into the final
// {status, body} pair of the standard path, with unset context fields
// replaced by the defaults. Custom response functions are not invoked here;
// use Respond for the complete construction.
func Materialize(err error) apis.Payload {
	return payloadFrom(Resolve(err))
}

// payloadFrom applies the context defaults and builds the response payload.
func payloadFrom(ctx apis.Context) apis.Payload {
	status := ctx.Status
	if status == 0 {
		status = FallbackStatus
	}
	c := ctx.Code
	if c == "" {
		c = string(DefaultCode)
	}
	msg := ctx.Message
	if msg == "" {
		msg = DefaultMessage
	}
	return apis.Payload{
		Status: status,
		Body: apis.Body{
			Result: nil,
			Error:  apis.BodyError{Code: c, Message: msg},
		},
	}
}

// Respond produces the complete transport-level response for an error
// occurrence using the default JSON body encoder.
//
// By contract it never fails: every input, however deep its nesting, yields
// exactly one response. Callers need no error handling around this call.
func Respond(err error) apis.Response {
	return RespondWith(JSONEncoder, err)
}

// RespondWith is Respond with a caller-chosen body encoder.
//
// Construction rules:
//
//   - a custom-strategy occurrence invokes its function with the occurrence
//     and the best-effort resolved context, and returns the function's
//     response verbatim — no post-processing, any content type;
//   - a nested occurrence delegates to the wrapped occurrence's own
//     construction, so an inner custom function is honored;
//   - everything else resolves to a (status, code, message) triple and is
//     encoded into the standard JSON body shape.
func RespondWith(enc apis.BodyEncoder, err error) apis.Response {
	return respondDepth(enc, err, 0)
}

// respondDepth is RespondWith with an explicit delegation-depth counter.
func respondDepth(enc apis.BodyEncoder, err error, depth int) apis.Response {
	if e, ok := err.(*E); ok {
		if s, ok := e.strategy(); ok {
			switch s.Kind {
			case resolver.KindCustom:
				ctx := contextFromStrategy(e, s, depth)
				return s.Fn(ctx)

			case resolver.KindNested:
				inner := e.Unwrap()
				if inner != nil && depth < maxNestingDepth {
					if ie, ok := inner.(*E); ok {
						return respondDepth(enc, ie, depth+1)
					}
				}
				// Foreign or missing inner values resolve at the triple
				// level below.
			}
		}
	}
	return encodeResponse(enc, resolveDepth(err, depth))
}
