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

package adapter

import (
	"reflect"
	"testing"

	"respx.dev/verr/apis"
	"respx.dev/verr/resolver"
)

var catalogTable = resolver.MustNew("OrderError",
	resolver.WithVariant("NotFound",
		resolver.WithStatus(404),
		resolver.WithCode("NOT_FOUND"),
		resolver.WithTemplate("Order not found: {0}"),
		resolver.WithPayload(resolver.PayloadValue),
	),
	resolver.WithVariant("Inner",
		resolver.WithNested(),
		resolver.WithPayload(resolver.PayloadError),
	),
	resolver.WithVariant("Audited",
		resolver.WithStatus(409),
		resolver.WithCode("CONFLICT"),
		resolver.WithTemplate("Conflict: {0}"),
		resolver.WithPayload(resolver.PayloadValue),
		resolver.WithFunc(func(ctx apis.Context) apis.Response {
			return apis.Response{Status: ctx.Status}
		}),
	),
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		variant string
		want    apis.ErrorDescriptor
	}{
		{
			variant: "NotFound",
			want: apis.ErrorDescriptor{
				Type:       "OrderError",
				Variant:    "NotFound",
				Strategy:   "direct",
				HTTPStatus: 404,
				Code:       "NOT_FOUND",
				Template:   "Order not found: {0}",
			},
		},
		{
			variant: "Inner",
			want: apis.ErrorDescriptor{
				Type:     "OrderError",
				Variant:  "Inner",
				Strategy: "nested",
			},
		},
		{
			// Custom variants surface their underlying direct declaration.
			variant: "Audited",
			want: apis.ErrorDescriptor{
				Type:       "OrderError",
				Variant:    "Audited",
				Strategy:   "custom",
				HTTPStatus: 409,
				Code:       "CONFLICT",
				Template:   "Conflict: {0}",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			got, ok := Describe(catalogTable, tt.variant)
			if !ok {
				t.Fatal("Describe returned !ok")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Describe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDescribe_Unknown(t *testing.T) {
	if _, ok := Describe(catalogTable, "Nope"); ok {
		t.Fatal("unknown variant must return !ok")
	}
	if _, ok := Describe(nil, "NotFound"); ok {
		t.Fatal("nil table must return !ok")
	}
}

func TestDescriptors_Order(t *testing.T) {
	ds := Descriptors(catalogTable)
	if len(ds) != 3 {
		t.Fatalf("len = %d, want 3", len(ds))
	}
	order := []string{"NotFound", "Inner", "Audited"}
	for i, want := range order {
		if ds[i].Variant != want {
			t.Fatalf("ds[%d].Variant = %q, want %q", i, ds[i].Variant, want)
		}
	}
	if Descriptors(nil) != nil {
		t.Fatal("nil table must yield nil")
	}
}
