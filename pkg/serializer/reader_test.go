// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   *strings.Reader
		wantErr bool
	}{
		{"json", FormatJSON, strings.NewReader("{}"), false},
		{"yaml", FormatYAML, strings.NewReader("a: b"), false},
		{"table rejected", FormatTable, strings.NewReader(""), true},
		{"unknown rejected", Format("xml"), strings.NewReader(""), true},
		{"nil input", FormatJSON, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.input == nil {
				_, err = NewReader(tt.format, nil)
			} else {
				_, err = NewReader(tt.format, tt.input)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: talks\nversions: [LEGACY, DEV_PREVIEW]\n"))
	if err != nil {
		t.Fatal(err)
	}
	var doc sampleDoc
	if err := r.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if doc.Name != "talks" || len(doc.Versions) != 2 {
		t.Errorf("Deserialize() = %+v", doc)
	}
}

func TestFromFile_Local(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"json-doc","versions":["LEGACY"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "doc.yml")
	if err := os.WriteFile(yamlPath, []byte("name: yaml-doc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	tablePath := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(tablePath, []byte("FIELD VALUE"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		source   string
		wantName string
		wantErr  bool
	}{
		{"json file", jsonPath, "json-doc", false},
		{"yaml file", yamlPath, "yaml-doc", false},
		{"malformed", badPath, "", true},
		{"table not readable", tablePath, "", true},
		{"missing", filepath.Join(dir, "nope.json"), "", true},
		{"empty source", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFile[sampleDoc](tt.source)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got.Name != tt.wantName {
				t.Errorf("FromFile() name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestFromSource_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != HTTPUserAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/catalog.yaml":
			_, _ = w.Write([]byte("name: remote\n"))
		case "/huge.json":
			_, _ = w.Write([]byte(`{"name":"` + strings.Repeat("x", 2<<20) + `"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	got, err := FromSource[sampleDoc](ctx, srv.URL+"/catalog.yaml", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}
	if got.Name != "remote" {
		t.Errorf("name = %q, want remote", got.Name)
	}

	if _, err := FromSource[sampleDoc](ctx, srv.URL+"/missing.yaml", WithHTTPClient(srv.Client())); err == nil {
		t.Error("expected error for 404")
	} else if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %v should mention status", err)
	}

	if _, err := FromSource[sampleDoc](ctx, srv.URL+"/huge.json", WithHTTPClient(srv.Client())); err == nil {
		t.Error("expected error for oversized document")
	}
}

func TestFromSource_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("name: late\n"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := FromSource[sampleDoc](ctx, srv.URL+"/doc.yaml", WithHTTPClient(srv.Client())); err == nil {
		t.Error("expected error for canceled context")
	}
}
