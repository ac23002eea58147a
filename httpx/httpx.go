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

package httpx

import (
	"net/http"
	"strconv"

	"respx.dev/verr"
	"respx.dev/verr/apis"
)

// Meta carries extra context the HTTP layer can add on top of the resolved
// response. All fields are optional and typically come from request context,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	RetryAfterSeconds int
}

// Writer is a thin adapter that turns an error occurrence into a complete
// HTTP response. The zero value writes the standard JSON body shape with the
// default encoder.
type Writer struct {
	// Encoder overrides the body encoder for standard-path responses.
	// Nil means the default deterministic JSON encoder. Custom response
	// functions bypass it entirely.
	Encoder apis.BodyEncoder
}

// Write resolves err and writes the resulting response. It never fails: any
// error, declared or opaque, produces exactly one well-formed response.
//
// A nil err writes nothing, so handlers can call Write unconditionally on
// their return path.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	resp := verr.RespondWith(w.Encoder, err)

	if resp.ContentType != "" {
		rw.Header().Set("Content-Type", resp.ContentType)
	}
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(resp.Status)
	_, _ = rw.Write(resp.Body)
}

// WriteError is the bare-bones variant of Write for handlers without any
// request-scoped metadata.
func WriteError(rw http.ResponseWriter, err error) {
	Writer{}.Write(rw, err, Meta{})
}
