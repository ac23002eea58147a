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

// Package grpcx projects resolved error occurrences onto gRPC status errors.
//
// Custom response functions are an HTTP-shaped escape hatch and do not apply
// here: this layer always works from the resolved (status, code, message)
// triple, mapping the HTTP status onto the closest gRPC code and attaching
// the triple as structured status details.
package grpcx

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"respx.dev/verr"
)

// httpToGRPC maps well-known HTTP statuses onto gRPC codes. Statuses not
// listed fall back by class: any other 4xx maps to InvalidArgument, anything
// else to Internal.
var httpToGRPC = map[int]gcodes.Code{
	http.StatusBadRequest:            gcodes.InvalidArgument,
	http.StatusUnauthorized:          gcodes.Unauthenticated,
	http.StatusForbidden:             gcodes.PermissionDenied,
	http.StatusNotFound:              gcodes.NotFound,
	http.StatusConflict:              gcodes.Aborted,
	http.StatusGone:                  gcodes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:    gcodes.FailedPrecondition,
	http.StatusRequestEntityTooLarge: gcodes.ResourceExhausted,
	http.StatusUnprocessableEntity:   gcodes.InvalidArgument,
	http.StatusTooManyRequests:       gcodes.ResourceExhausted,
	http.StatusInternalServerError:   gcodes.Internal,
	http.StatusNotImplemented:        gcodes.Unimplemented,
	http.StatusBadGateway:            gcodes.Unavailable,
	http.StatusServiceUnavailable:    gcodes.Unavailable,
	http.StatusGatewayTimeout:        gcodes.DeadlineExceeded,
}

// GRPCCode maps a resolved HTTP status onto the closest gRPC code.
func GRPCCode(httpStatus int) gcodes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	if httpStatus >= 400 && httpStatus < 500 {
		return gcodes.InvalidArgument
	}
	return gcodes.Internal
}

// UnaryServerInterceptor returns a gRPC interceptor that converts declared
// error occurrences returned by handlers into gRPC status errors.
//
// The resolved triple travels as a structpb.Struct detail with the fields
// "code", "message" and "http_status", so HTTP and gRPC clients of the same
// service observe the same logical error. Errors that are already gRPC
// statuses, and plain errors with no declared resolution, pass through
// unchanged.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !declared(err) {
			// Transport statuses and opaque errors pass through.
			return nil, err
		}
		return nil, Convert(err)
	}
}

// declared reports whether the error participates in declared resolution:
// an occurrence itself, or one somewhere down its wrap chain.
func declared(err error) bool {
	var e *verr.E
	return errors.As(err, &e)
}

// Convert resolves err and builds the equivalent gRPC status error with the
// triple attached as details. Like the HTTP path it is total: any error
// yields a well-formed status. Occurrences buried under ordinary %w wrappers
// are surfaced first, so handler-level context wrapping does not cost the
// declared resolution.
func Convert(err error) error {
	var e *verr.E
	if errors.As(err, &e) {
		err = e
	}
	p := verr.Materialize(err)

	base := gstatus.New(GRPCCode(p.Status), p.Body.Error.Message)

	detail, derr := structpb.NewStruct(map[string]any{
		"code":        p.Body.Error.Code,
		"message":     p.Body.Error.Message,
		"http_status": p.Status,
	})
	if derr != nil {
		return base.Err()
	}
	anyDetail, derr := anypb.New(detail)
	if derr != nil {
		return base.Err()
	}
	with, derr := base.WithDetails(anyDetail)
	if derr != nil {
		return base.Err()
	}
	return with.Err()
}

// ExtractDetail pulls the attached triple back out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractDetail(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
