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

// Package adapter exports frozen resolver tables as flat, transport-friendly
// descriptors for documentation generators, structured logging and error
// catalogs.
package adapter

import (
	"respx.dev/verr/apis"
	"respx.dev/verr/resolver"
)

// Describe converts one resolved variant into a portable ErrorDescriptor.
//
// For custom variants that carry an underlying direct declaration, the
// underlying status, code and template appear in the descriptor: the custom
// function is opaque, but the declared intent behind it is still worth
// cataloging.
func Describe(t *resolver.Table, variant string) (apis.ErrorDescriptor, bool) {
	if t == nil {
		return apis.ErrorDescriptor{}, false
	}
	s, ok := t.Strategy(variant)
	if !ok {
		return apis.ErrorDescriptor{}, false
	}
	d := apis.ErrorDescriptor{
		Type:     t.TypeName(),
		Variant:  variant,
		Strategy: s.Kind.String(),
	}
	base := s
	if s.Kind == resolver.KindCustom && s.Under != nil {
		base = s.Under
	}
	if base.Kind == resolver.KindDirect {
		d.HTTPStatus = base.Status
		d.Code = base.Code.String()
		d.Template = base.Template.String()
	}
	return d, true
}

// Descriptors converts every variant of a frozen table, in declaration
// order. A nil table yields an empty slice.
func Descriptors(t *resolver.Table) []apis.ErrorDescriptor {
	if t == nil {
		return nil
	}
	variants := t.Variants()
	out := make([]apis.ErrorDescriptor, 0, len(variants))
	for _, v := range variants {
		d, ok := Describe(t, v)
		if !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
