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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"respx.dev/verr"
	"respx.dev/verr/resolver"
)

var rpcErrors = resolver.MustNew("RPCError",
	resolver.WithVariant("NotFound",
		resolver.WithStatus(404),
		resolver.WithCode("NOT_FOUND"),
		resolver.WithTemplate("Not found: {0}"),
		resolver.WithPayload(resolver.PayloadValue),
	),
	resolver.WithVariant("Throttled",
		resolver.WithStatus(429),
		resolver.WithCode("TOO_MANY_REQUESTS"),
		resolver.WithTemplate("Rate limit exceeded"),
	),
)

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		status int
		want   gcodes.Code
	}{
		{400, gcodes.InvalidArgument},
		{401, gcodes.Unauthenticated},
		{403, gcodes.PermissionDenied},
		{404, gcodes.NotFound},
		{409, gcodes.Aborted},
		{422, gcodes.InvalidArgument},
		{429, gcodes.ResourceExhausted},
		{418, gcodes.InvalidArgument}, // unmapped 4xx
		{500, gcodes.Internal},
		{502, gcodes.Unavailable},
		{503, gcodes.Unavailable},
		{504, gcodes.DeadlineExceeded},
		{599, gcodes.Internal}, // unmapped 5xx
	}
	for _, tt := range tests {
		if got := GRPCCode(tt.status); got != tt.want {
			t.Errorf("GRPCCode(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func intercept(t *testing.T, handlerErr error) error {
	t.Helper()
	ic := UnaryServerInterceptor()
	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, req any) (any, error) {
			return nil, handlerErr
		})
	return err
}

func TestInterceptor_DeclaredOccurrence(t *testing.T) {
	err := intercept(t, verr.New(rpcErrors, "NotFound", "order 42"))

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Code() != gcodes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if st.Message() != "Not found: order 42" {
		t.Fatalf("message = %q", st.Message())
	}

	detail, ok := ExtractDetail(err)
	if !ok {
		t.Fatal("no detail attached")
	}
	fields := detail.GetFields()
	if got := fields["code"].GetStringValue(); got != "NOT_FOUND" {
		t.Fatalf("detail code = %q", got)
	}
	if got := fields["http_status"].GetNumberValue(); got != 404 {
		t.Fatalf("detail http_status = %v", got)
	}
}

func TestInterceptor_WrappedOccurrence(t *testing.T) {
	// An occurrence wrapped by ordinary fmt.Errorf chains still converts.
	inner := verr.New(rpcErrors, "Throttled", nil)
	err := intercept(t, fmt.Errorf("calling backend: %w", inner))

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Code() != gcodes.ResourceExhausted {
		t.Fatalf("code = %v, want ResourceExhausted", st.Code())
	}
}

func TestInterceptor_Passthrough(t *testing.T) {
	opaque := errors.New("database on fire")
	if err := intercept(t, opaque); err != opaque {
		t.Fatalf("opaque error rewritten: %v", err)
	}

	already := gstatus.Error(gcodes.AlreadyExists, "dup")
	if err := intercept(t, already); err != already {
		t.Fatalf("status error rewritten: %v", err)
	}
}

func TestInterceptor_Success(t *testing.T) {
	ic := UnaryServerInterceptor()
	resp, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, req any) (any, error) {
			return "ok", nil
		})
	if err != nil || resp != "ok" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
}

func TestExtractDetail_NotStatus(t *testing.T) {
	if _, ok := ExtractDetail(errors.New("plain")); ok {
		t.Fatal("plain error must have no detail")
	}
	if _, ok := ExtractDetail(nil); ok {
		t.Fatal("nil must have no detail")
	}
}
