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
	jsoniter "github.com/json-iterator/go"

	"respx.dev/verr/apis"
)

// json is the codec for the standard body shape. The stdlib-compatible
// config keeps field ordering and escaping deterministic, so resolving the
// same occurrence twice yields byte-identical responses.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// contentTypeJSON is the content type of every standard-path response.
// Custom response functions choose their own.
const contentTypeJSON = "application/json"

// genericBody is emitted if a caller-supplied encoder fails. It is the fixed
// fallback body pre-encoded by hand so that this last resort cannot itself
// fail.
const genericBody = `{"result":null,"error":{"code":"INTERNAL_SERVER_ERROR","message":"An error occurred"}}`

// jsonEncoder is the default apis.BodyEncoder.
type jsonEncoder struct{}

// EncodeBody implements apis.BodyEncoder.
func (jsonEncoder) EncodeBody(b apis.Body) ([]byte, error) {
	return json.Marshal(b)
}

// JSONEncoder is the default body encoder: deterministic JSON in the
// standard {"result":null,"error":{...}} shape. Safe for concurrent use.
var JSONEncoder apis.BodyEncoder = jsonEncoder{}

// encodeResponse turns a resolved context into a complete JSON response.
func encodeResponse(enc apis.BodyEncoder, ctx apis.Context) apis.Response {
	if enc == nil {
		enc = JSONEncoder
	}
	p := payloadFrom(ctx)
	body, err := enc.EncodeBody(p.Body)
	if err != nil {
		// Response construction must stay total even with a broken encoder.
		return apis.Response{
			Status:      FallbackStatus,
			ContentType: contentTypeJSON,
			Body:        []byte(genericBody),
		}
	}
	return apis.Response{
		Status:      p.Status,
		ContentType: contentTypeJSON,
		Body:        body,
	}
}
