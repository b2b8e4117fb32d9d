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
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"k8s.io/utils/ptr"

	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

// Catalog is the immutable enumeration of API versions and their status.
// The zero value is an empty catalog; use NewCatalog or DefaultCatalog.
type Catalog struct {
	current      []Version
	deprecated   []Version
	unsupported  []Version
	preview      []Version
	deprecatedAt map[Version]time.Time
}

// Option customizes a catalog at construction time.
type Option func(*Catalog)

// WithPreview marks current versions as preview releases.
func WithPreview(versions ...Version) Option {
	return func(c *Catalog) {
		c.preview = append(c.preview, versions...)
	}
}

// WithDeprecationDate records when a deprecated version was deprecated.
func WithDeprecationDate(v Version, at time.Time) Option {
	return func(c *Catalog) {
		if c.deprecatedAt == nil {
			c.deprecatedAt = make(map[Version]time.Time)
		}
		c.deprecatedAt[v] = at.UTC()
	}
}

// NewCatalog builds a catalog from the three version sets. Duplicates inside a
// set are dropped (first occurrence wins). The sets must be disjoint, tokens
// must be non-empty, preview versions must be current, and deprecation dates
// may only be attached to deprecated versions.
func NewCatalog(current, deprecated, unsupported []Version, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		current:     lo.Uniq(current),
		deprecated:  lo.Uniq(deprecated),
		unsupported: lo.Uniq(unsupported),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.preview = lo.Uniq(c.preview)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on invalid input.
// Use it only for catalogs defined in code.
func MustNewCatalog(current, deprecated, unsupported []Version, opts ...Option) *Catalog {
	c, err := NewCatalog(current, deprecated, unsupported, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the catalog compiled into the service.
func DefaultCatalog() *Catalog {
	return MustNewCatalog(
		[]Version{Legacy, Current, DevPreview},
		nil,
		nil,
		WithPreview(DevPreview),
	)
}

func (c *Catalog) validate() error {
	sets := map[string][]Version{
		"current":     c.current,
		"deprecated":  c.deprecated,
		"unsupported": c.unsupported,
		"preview":     c.preview,
	}
	for name, set := range sets {
		if slices.ContainsFunc(set, Version.IsEmpty) {
			return vsrerrors.NewWithContext(vsrerrors.ErrCodeInvalidRequest,
				"catalog contains an empty version", map[string]any{"set": name})
		}
	}

	pairs := [][2]string{
		{"current", "deprecated"},
		{"current", "unsupported"},
		{"deprecated", "unsupported"},
	}
	for _, p := range pairs {
		if overlap := lo.Intersect(sets[p[0]], sets[p[1]]); len(overlap) > 0 {
			return vsrerrors.NewWithContext(vsrerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("catalog sets %s and %s overlap", p[0], p[1]),
				map[string]any{"versions": overlap})
		}
	}

	for _, v := range c.preview {
		if !lo.Contains(c.current, v) {
			return vsrerrors.NewWithContext(vsrerrors.ErrCodeInvalidRequest,
				"preview version is not current", map[string]any{"version": v})
		}
	}

	for v := range c.deprecatedAt {
		if !lo.Contains(c.deprecated, v) {
			return vsrerrors.NewWithContext(vsrerrors.ErrCodeInvalidRequest,
				"deprecation date set for a version that is not deprecated", map[string]any{"version": v})
		}
	}
	return nil
}

// Current returns the actively supported versions.
func (c *Catalog) Current() []Version {
	return slices.Clone(c.current)
}

// Deprecated returns versions that are served but discouraged.
func (c *Catalog) Deprecated() []Version {
	return slices.Clone(c.deprecated)
}

// Unsupported returns retired versions. They are informational only.
func (c *Catalog) Unsupported() []Version {
	return slices.Clone(c.unsupported)
}

// Preview returns the current versions flagged as previews.
func (c *Catalog) Preview() []Version {
	return slices.Clone(c.preview)
}

// Supported returns current ∪ deprecated, current versions first.
func (c *Catalog) Supported() []Version {
	return lo.Union(c.current, c.deprecated)
}

// IsSupported reports whether v may be used for dispatch.
func (c *Catalog) IsSupported(v Version) bool {
	return lo.Contains(c.current, v) || lo.Contains(c.deprecated, v)
}

// IsDeprecated reports whether v is deprecated.
func (c *Catalog) IsDeprecated(v Version) bool {
	return lo.Contains(c.deprecated, v)
}

// IsUnsupported reports whether v is a known retired version.
func (c *Catalog) IsUnsupported(v Version) bool {
	return lo.Contains(c.unsupported, v)
}

// IsPreview reports whether v is a preview release.
func (c *Catalog) IsPreview(v Version) bool {
	return lo.Contains(c.preview, v)
}

// Status classifies v.
func (c *Catalog) Status(v Version) Status {
	switch {
	case c.IsPreview(v):
		return StatusPreview
	case lo.Contains(c.current, v):
		return StatusCurrent
	case c.IsDeprecated(v):
		return StatusDeprecated
	case c.IsUnsupported(v):
		return StatusUnsupported
	default:
		return StatusUnknown
	}
}

// DeprecatedAt returns the deprecation date of v, or nil if none was recorded.
func (c *Catalog) DeprecatedAt(v Version) *time.Time {
	at, ok := c.deprecatedAt[v]
	if !ok {
		return nil
	}
	return ptr.To(at)
}

// Entry describes one catalog version.
type Entry struct {
	Version      Version    `json:"version" yaml:"version"`
	Status       Status     `json:"status" yaml:"status"`
	DeprecatedAt *time.Time `json:"deprecatedAt,omitempty" yaml:"deprecatedAt,omitempty"`
}

// Entries lists every known version, supported ones first, then unsupported.
func (c *Catalog) Entries() []Entry {
	all := lo.Union(c.current, c.deprecated, c.unsupported)
	entries := make([]Entry, 0, len(all))
	for _, v := range all {
		entries = append(entries, Entry{
			Version:      v,
			Status:       c.Status(v),
			DeprecatedAt: c.DeprecatedAt(v),
		})
	}
	return entries
}
