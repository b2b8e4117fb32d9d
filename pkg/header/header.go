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

package header

import (
	"time"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

// Kind names the type of document carried after the header. For served
// resources it is the resource name.
type Kind string

// Document kinds produced by the tooling itself.
const (
	KindVersionList Kind = "VersionList"
	KindBindingList Kind = "BindingList"
	KindResolution  Kind = "Resolution"
)

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsEmpty reports whether the kind is unset.
func (k Kind) IsEmpty() bool {
	return k == ""
}

// Header identifies a document: what it is and which API version shaped it.
type Header struct {
	Kind       Kind               `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion apiversion.Version `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the API version that shaped the document.
func WithAPIVersion(v apiversion.Version) Option {
	return func(h *Header) {
		h.APIVersion = v
	}
}

// New creates a Header from options.
func New(opts ...Option) *Header {
	h := &Header{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init sets kind and API version and records the generation time and, when
// not empty, the producing tool's version.
func (h *Header) Init(kind Kind, apiVersion apiversion.Version, toolVersion string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if toolVersion != "" {
		h.Metadata[MetadataVersion] = toolVersion
	}
}
