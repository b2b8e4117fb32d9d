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

package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

// ErrNotRegistered is wrapped by every Lookup miss.
var ErrNotRegistered = errors.New("no serializer registered")

// Serializer turns a resource instance into its representation for one
// API version.
type Serializer interface {
	Serialize(ctx context.Context, instance any) (any, error)
}

// SerializerFunc adapts a function to the Serializer interface. Its derived
// resource name is always "SerializerFunc", so bind it with Named.
type SerializerFunc func(ctx context.Context, instance any) (any, error)

// Serialize calls f.
func (f SerializerFunc) Serialize(ctx context.Context, instance any) (any, error) {
	return f(ctx, instance)
}

// Key identifies one binding.
type Key struct {
	Resource string             `json:"resource" yaml:"resource"`
	Version  apiversion.Version `json:"version" yaml:"version"`
}

// String renders the key as resource@version.
func (k Key) String() string {
	return k.Resource + "@" + k.Version.String()
}

// Registry is a concurrency-safe table of serializers keyed by Key.
type Registry struct {
	mu       sync.RWMutex
	bindings map[Key]Serializer
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		bindings: make(map[Key]Serializer),
	}
}

// Register binds s to (resource, v), replacing any previous binding.
func (r *Registry) Register(resource string, v apiversion.Version, s Serializer) {
	k := Key{Resource: resource, Version: v}

	r.mu.Lock()
	_, replaced := r.bindings[k]
	r.bindings[k] = s
	r.mu.Unlock()

	slog.Debug("serializer registered",
		"resource", resource,
		"version", v,
		"type", fmt.Sprintf("%T", s),
		"replaced", replaced)
}

// Lookup returns the serializer bound to exactly (resource, v).
func (r *Registry) Lookup(resource string, v apiversion.Version) (Serializer, error) {
	r.mu.RLock()
	s, ok := r.bindings[Key{Resource: resource, Version: v}]
	r.mu.RUnlock()

	if !ok {
		return nil, vsrerrors.WrapWithContext(vsrerrors.ErrCodeNotRegistered,
			fmt.Sprintf("no serializer for %s at version %s", resource, v),
			ErrNotRegistered,
			map[string]any{"resource": resource, "version": v.String()})
	}
	return s, nil
}

// Has reports whether (resource, v) is bound.
func (r *Registry) Has(resource string, v apiversion.Version) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bindings[Key{Resource: resource, Version: v}]
	return ok
}

// Keys returns every bound key ordered by resource, then version.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.bindings))
	for k := range r.bindings {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Resource != keys[j].Resource {
			return keys[i].Resource < keys[j].Resource
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}

// Resources returns the distinct resource names, sorted.
func (r *Registry) Resources() []string {
	r.mu.RLock()
	seen := make(map[string]struct{})
	for k := range r.bindings {
		seen[k.Resource] = struct{}{}
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Versions returns the versions bound for resource, sorted.
func (r *Registry) Versions(resource string) []apiversion.Version {
	r.mu.RLock()
	var vs []apiversion.Version
	for k := range r.bindings {
		if k.Resource == resource {
			vs = append(vs, k.Version)
		}
	}
	r.mu.RUnlock()

	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Count returns the number of bindings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// IsEmpty returns true if nothing is registered.
func (r *Registry) IsEmpty() bool {
	return r.Count() == 0
}
