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
	"reflect"

	"github.com/samber/lo"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

// BindOption customizes a Bind call.
type BindOption func(*bindConfig)

type bindConfig struct {
	versions []apiversion.Version
	name     string
}

// ForVersions restricts the binding to the given versions. Versions are not
// checked against the catalog. With no arguments it has no effect.
func ForVersions(vs ...apiversion.Version) BindOption {
	return func(c *bindConfig) {
		c.versions = append(c.versions, vs...)
	}
}

// Named sets the resource name instead of deriving it from the type.
func Named(name string) BindOption {
	return func(c *bindConfig) {
		c.name = name
	}
}

// Bind registers s once per applicable version and returns the keys written.
//
// Without ForVersions every version in cat.Supported() at the time of the
// call is bound; a nil catalog then binds nothing. Without Named the resource name is ResourceName(s).
func Bind(reg *Registry, cat *apiversion.Catalog, s Serializer, opts ...BindOption) []Key {
	cfg := &bindConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	name := cfg.name
	if name == "" {
		name = ResourceName(s)
	}

	versions := lo.Uniq(cfg.versions)
	if len(versions) == 0 && cat != nil {
		versions = cat.Supported()
	}

	keys := make([]Key, 0, len(versions))
	for _, v := range versions {
		reg.Register(name, v, s)
		keys = append(keys, Key{Resource: name, Version: v})
	}
	return keys
}

// ResourceName derives a resource name from the dynamic type of s: the type
// name with pointers removed. Unnamed types yield their type literal.
func ResourceName(s Serializer) string {
	t := reflect.TypeOf(s)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
