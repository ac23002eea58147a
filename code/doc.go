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

// Package code provides validation (and optional normalization) for verr
// error codes.
//
// A "code" is the machine-readable identifier that ends up in the "code" field
// of an error response body, such as "BAD_REQUEST", "AUTHENTICATION_ERROR" or
// "INTERNAL_SERVER_ERROR". Codes are meant to be:
//
//   - short and stable;
//   - opaque printable-ASCII tokens, no whitespace;
//   - suitable for switch-casing on the client side.
//
// The declared string is used exactly as written: Parse validates and never
// rewrites, so "ResourceGone" reaches the wire as "ResourceGone".
// Upper-snake-case is the recommended convention — it is what the built-in
// constants use and what Normalize produces on explicit request — but it is a
// style choice, not an invariant of the response contract.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every directly resolved variant
// MUST carry a non-empty code.
package code
