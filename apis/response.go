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

// Body is the wire shape of a standard error response body:
//
//	{"result": null, "error": {"code": "...", "message": "..."}}
//
// This JSON shape is the one bit-exact external guarantee of the system.
// Key names and the constant "result": null MUST be preserved verbatim; key
// order is not significant.
type Body struct {
	// Result is always null in an error response. It exists so that success
	// and error envelopes share a single top-level shape.
	Result any `json:"result"`

	// Error carries the machine-readable code and the rendered message.
	Error BodyError `json:"error"`
}

// BodyError is the "error" object inside Body.
type BodyError struct {
	// Code is the machine-readable error code, e.g. "BAD_REQUEST".
	Code string `json:"code"`

	// Message is the human-readable, already rendered message.
	Message string `json:"message"`
}

// Payload is the final {status, body} pair produced for one error occurrence
// on the standard (non-custom) path. It is constructed by the materializer,
// handed to the body encoder and the response sink, and not retained.
type Payload struct {
	// Status is the HTTP status code, in [100, 599].
	Status int

	// Body is the structured response body, prior to encoding.
	Body Body
}

// Response is a complete transport-level response: status, content type and
// encoded body bytes. This is what response sinks (HTTP writers, test
// harnesses) consume, and what custom response functions must produce.
//
// The standard path always sets ContentType to "application/json"; a custom
// function may return any content type.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// BodyEncoder turns a structured Body into bytes. The default implementation
// produces deterministic JSON; alternative encoders can be plugged into
// httpx.Writer for services with a different wire format.
//
// Implementations MUST be safe for concurrent use.
type BodyEncoder interface {
	// EncodeBody serializes the body. An encoder failure must be reported,
	// never silently swallowed; callers fall back to a fixed generic body.
	EncodeBody(b Body) ([]byte, error)
}
