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

package code

// Request / input error codes
//
// These codes describe problems with the incoming request itself. They are
// usually paired with 4xx statuses in variant declarations.
const (
	// BadRequest indicates a malformed or semantically invalid request.
	// Use this as the generic 400 companion when no more specific code applies.
	BadRequest Code = "BAD_REQUEST"

	// ValidationError indicates that a structurally well-formed request failed
	// domain validation (field constraints, cross-field consistency).
	// Typically paired with 400 or 422.
	ValidationError Code = "VALIDATION_ERROR"

	// NotFound indicates that the referenced resource does not exist or is
	// not visible to the caller. Typically paired with 404.
	NotFound Code = "NOT_FOUND"

	// Conflict indicates a conflicting update or a resource-state clash
	// (duplicate creation, version mismatch). Typically paired with 409.
	Conflict Code = "CONFLICT"
)

// Authentication / authorization error codes
const (
	// AuthenticationError indicates missing or invalid credentials — the
	// caller must (re-)authenticate. Typically paired with 401.
	AuthenticationError Code = "AUTHENTICATION_ERROR"

	// PermissionDenied indicates that the caller is authenticated but not
	// allowed to perform the action. Typically paired with 403.
	PermissionDenied Code = "PERMISSION_DENIED"
)

// Load / availability error codes
const (
	// TooManyRequests indicates that the caller hit a rate limit or quota.
	// Typically paired with 429.
	TooManyRequests Code = "TOO_MANY_REQUESTS"

	// ServiceUnavailable indicates that the service or a required dependency
	// is temporarily unable to serve. Typically paired with 503.
	ServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// Timeout indicates that the operation exceeded its time budget.
	// Typically paired with 504.
	Timeout Code = "TIMEOUT"
)

// Server-side error codes
const (
	// InternalServerError indicates an unexpected server-side failure.
	//
	// This is also the fixed code that the materializer emits when a nested
	// delegation target cannot resolve itself (an opaque external error with
	// no declared response behavior).
	InternalServerError Code = "INTERNAL_SERVER_ERROR"

	// UnknownError is the code substituted when a participating error type
	// produced a response context without a code. Mirrors the default used
	// for missing statuses (500) and missing messages.
	UnknownError Code = "UNKNOWN_ERROR"
)
