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

// Package template provides parsing, validation and rendering for verr
// message templates.
//
// A template is the human-readable message text declared on an error variant,
// with positional placeholders referencing the variant's payload:
//
//	"Bad request: {0}"
//	"upstream call failed with {0}"
//	"literal braces: {{not a placeholder}}"
//
// Placeholders are substituted by plain string interpolation at render time —
// a template is data, never code. The placeholder syntax is validated once,
// when the variant declaration is resolved, so rendering at run time cannot
// fail.
//
// The empty template ("") is treated as "not provided". Variants that resolve
// through nesting or a custom function do not need one; variants that resolve
// directly must declare one.
package template
