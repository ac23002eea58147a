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

package resolver

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable and human-friendly.
// Update golden with: go test ./resolver -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	tbl := MustNew("OrderError",
		WithVariant("BadRequest",
			WithStatus(400),
			WithCode("BAD_REQUEST"),
			WithTemplate("Bad request: {0}"),
			WithPayload(PayloadValue),
		),
		WithVariant("Storage",
			WithNested(),
			WithPayload(PayloadError),
		),
		WithVariant("Special",
			WithFunc(customFn),
			WithStatus(402),
			WithCode("SPECIAL_CASE"),
			WithTemplate("special: {0}"),
			WithPayload(PayloadValue),
		),
	)

	var b strings.Builder

	// Case 1: direct
	b.WriteString(tbl.Explain("BadRequest"))
	b.WriteString("\n---\n")

	// Case 2: nested
	b.WriteString(tbl.Explain("Storage"))
	b.WriteString("\n---\n")

	// Case 3: custom with an underlying direct resolution
	b.WriteString(tbl.Explain("Special"))
	b.WriteString("\n---\n")

	// Case 4: unknown variant
	b.WriteString(tbl.Explain("Nope"))
	b.WriteString("\n")

	got := b.String()

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
