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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Reader decodes documents from an io.Reader.
type Reader struct {
	format Format
	input  io.Reader
}

// NewReader returns a Reader for input. Table format cannot be read.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}
	if input == nil {
		return nil, fmt.Errorf("input source is nil")
	}
	return &Reader{format: format, input: input}, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	return decode(r.format, r.input, v)
}

// FromFile loads a T from a local path, an http(s) URL or a cm:// URI.
func FromFile[T any](source string, opts ...Option) (*T, error) {
	return FromSource[T](context.Background(), source, opts...)
}

// FromSource is FromFile with a caller supplied context.
func FromSource[T any](ctx context.Context, source string, opts ...Option) (*T, error) {
	format, data, err := load(ctx, source, newOptions(opts))
	if err != nil {
		return nil, err
	}

	r, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", source, err)
	}

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", source, err)
	}

	slog.Debug("document loaded", "source", source, "format", format, "bytes", len(data))
	return &v, nil
}

// load returns the raw document at source together with its format.
func load(ctx context.Context, source string, o *options) (Format, []byte, error) {
	switch {
	case source == "":
		return "", nil, fmt.Errorf("source is empty")

	case IsConfigMapURI(source):
		namespace, name, err := ParseConfigMapURI(source)
		if err != nil {
			return "", nil, err
		}
		return readConfigMap(ctx, o, namespace, name)

	case isHTTPSource(source):
		data, err := fetch(ctx, o.http(), source)
		if err != nil {
			return "", nil, err
		}
		return FormatFromPath(source), data, nil

	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", nil, fmt.Errorf("failed to open file: %w", err)
		}
		return FormatFromPath(source), data, nil
	}
}
