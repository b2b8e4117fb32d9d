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

package apiversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/serializer-registry/pkg/serializer"
)

// File is the serialized form of a Catalog.
//
//	current: [LEGACY, DEV_PREVIEW]
//	deprecated: []
//	unsupported: []
//	preview: [DEV_PREVIEW]
//	deprecations:
//	  "2023.1": 2024-06-01T00:00:00Z
type File struct {
	Current      []Version             `json:"current" yaml:"current"`
	Deprecated   []Version             `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Unsupported  []Version             `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
	Preview      []Version             `json:"preview,omitempty" yaml:"preview,omitempty"`
	Deprecations map[Version]time.Time `json:"deprecations,omitempty" yaml:"deprecations,omitempty"`
}

// Catalog validates the document and builds a Catalog from it.
func (f *File) Catalog() (*Catalog, error) {
	opts := []Option{WithPreview(f.Preview...)}
	for v, at := range f.Deprecations {
		opts = append(opts, WithDeprecationDate(v, at))
	}
	return NewCatalog(f.Current, f.Deprecated, f.Unsupported, opts...)
}

// File returns the serializable form of the catalog.
func (c *Catalog) File() File {
	f := File{
		Current:     c.Current(),
		Deprecated:  c.Deprecated(),
		Unsupported: c.Unsupported(),
		Preview:     c.Preview(),
	}
	if len(c.deprecatedAt) > 0 {
		f.Deprecations = make(map[Version]time.Time, len(c.deprecatedAt))
		for v, at := range c.deprecatedAt {
			f.Deprecations[v] = at
		}
	}
	return f
}

// LoadCatalog reads a catalog document from a file path, an HTTP(S) URL, or a
// ConfigMap URI (cm://namespace/name). An empty source yields DefaultCatalog.
func LoadCatalog(ctx context.Context, source string, opts ...serializer.Option) (*Catalog, error) {
	if source == "" {
		return DefaultCatalog(), nil
	}

	f, err := serializer.FromSource[File](ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog from %q: %w", source, err)
	}

	c, err := f.Catalog()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %q: %w", source, err)
	}

	slog.Debug("catalog loaded",
		"source", source,
		"current", c.current,
		"deprecated", c.deprecated,
		"unsupported", c.unsupported)

	return c, nil
}
