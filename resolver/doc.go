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

// Package resolver turns the declared shape of an error type — its variants
// and their attributes — into an immutable table of response strategies.
//
// # Overview
//
// A service declares each error variant once, with the HTTP status, the
// machine-readable code and the message template it should produce (or with
// delegation to a wrapped inner error, or with a custom response function):
//
//	tbl, err := resolver.New("OrderError",
//	    resolver.WithVariant("BadRequest",
//	        resolver.WithStatus(400),
//	        resolver.WithCode("BAD_REQUEST"),
//	        resolver.WithTemplate("Bad request: {0}"),
//	        resolver.WithPayload(resolver.PayloadValue),
//	    ),
//	    resolver.WithVariant("Storage",
//	        resolver.WithNested(),
//	        resolver.WithPayload(resolver.PayloadError),
//	    ),
//	)
//
// New validates every declaration and freezes the result into a Table: an
// immutable mapping from variant name to exactly one resolved strategy.
// Resolution is purely structural — it looks only at declared attributes,
// never at run-time values — and runs once per error type, typically in a
// package var block via MustNew.
//
// # Strategy selection
//
// For each variant, in order of precedence:
//
//  1. a custom response function (variant-level, else type-level) resolves
//     the variant to the custom strategy; a co-declared status/code pair or
//     nested flag is kept as the best-effort underlying resolution that the
//     function receives in its context;
//  2. the nested flag resolves the variant to delegation; it requires the
//     variant to wrap exactly one inner error (PayloadError) and must not be
//     combined with a status/code pair;
//  3. a status/code pair (both present, status in [100, 599], non-empty
//     template whose placeholders fit the declared payload) resolves the
//     variant directly;
//  4. anything else is a *DefinitionError.
//
// A status without a code, or a code without a status, is always a
// *DefinitionError — even under a custom function.
//
// Definition errors are fatal by design: they depend only on static
// declarations and must surface before the service starts, never at request
// time. MustNew panics on them for exactly that reason.
//
// # Immutability
//
// All declarations are copied during New. After construction the Table does
// not observe further changes to caller-owned values, and lookups are safe to
// share across handlers, goroutines and requests.
//
// # Diagnostics
//
// For debugging and tests, Table.Explain returns a human-readable trace of
// how a particular variant was resolved. This is intended for inspection and
// logging, not for stable machine parsing.
package resolver
