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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

func TestBind_AllSupportedVersions(t *testing.T) {
	cat := apiversion.MustNewCatalog(apiversion.Versions("LEGACY", "DEV_PREVIEW"), nil, nil)
	reg := New()
	x := &stubSerializer{id: "x"}

	keys := Bind(reg, cat, x, Named("Talk"))
	assert.Equal(t, []Key{{"Talk", "LEGACY"}, {"Talk", "DEV_PREVIEW"}}, keys)

	for _, v := range []apiversion.Version{"LEGACY", "DEV_PREVIEW"} {
		got, err := reg.Lookup("Talk", v)
		require.NoError(t, err, v)
		assert.Same(t, x, got)
	}

	_, err := reg.Lookup("Talk", "DEV_PREVIEW2")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestBind_IncludesDeprecatedExcludesUnsupported(t *testing.T) {
	cat := apiversion.MustNewCatalog(
		apiversion.Versions("2025.1"),
		apiversion.Versions("2024.1"),
		apiversion.Versions("LEGACY"),
	)
	reg := New()
	Bind(reg, cat, &stubSerializer{}, Named("Submission"))

	assert.True(t, reg.Has("Submission", "2025.1"))
	assert.True(t, reg.Has("Submission", "2024.1"))
	assert.False(t, reg.Has("Submission", "LEGACY"))
}

func TestBind_ExplicitVersions(t *testing.T) {
	cat := apiversion.DefaultCatalog()

	t.Run("single version is a singleton set", func(t *testing.T) {
		reg := New()
		keys := Bind(reg, cat, &stubSerializer{}, Named("Speaker"), ForVersions(apiversion.Legacy))
		assert.Equal(t, []Key{{"Speaker", apiversion.Legacy}}, keys)
		assert.False(t, reg.Has("Speaker", apiversion.DevPreview))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		reg := New()
		keys := Bind(reg, cat, &stubSerializer{}, Named("Speaker"),
			ForVersions(apiversion.Legacy, apiversion.Legacy, apiversion.DevPreview))
		assert.Len(t, keys, 2)
		assert.Equal(t, 2, reg.Count())
	})

	t.Run("empty set means all supported", func(t *testing.T) {
		reg := New()
		keys := Bind(reg, cat, &stubSerializer{}, Named("Speaker"), ForVersions())
		assert.Len(t, keys, len(cat.Supported()))
	})

	t.Run("versions outside the catalog are still registered", func(t *testing.T) {
		reg := New()
		Bind(reg, cat, &stubSerializer{}, Named("Speaker"), ForVersions("2099.1"))
		assert.False(t, cat.IsSupported("2099.1"))
		_, err := reg.Lookup("Speaker", "2099.1")
		assert.NoError(t, err)
	})
}

func TestBind_DerivedName(t *testing.T) {
	cat := apiversion.DefaultCatalog()
	reg := New()

	keys := Bind(reg, cat, &TalkSerializer{})
	require.NotEmpty(t, keys)
	assert.Equal(t, "TalkSerializer", keys[0].Resource)

	_, err := reg.Lookup("TalkSerializer", apiversion.Legacy)
	assert.NoError(t, err)
}

func TestBind_CatalogSnapshotAtCallTime(t *testing.T) {
	reg := New()
	Bind(reg, apiversion.MustNewCatalog(apiversion.Versions("LEGACY"), nil, nil), &stubSerializer{}, Named("Talk"))

	// A wider catalog built later does not add bindings retroactively.
	later := apiversion.DefaultCatalog()
	assert.True(t, later.IsSupported(apiversion.DevPreview))
	assert.False(t, reg.Has("Talk", apiversion.DevPreview))
}

func TestBind_NilCatalog(t *testing.T) {
	reg := New()
	assert.Empty(t, Bind(reg, nil, &stubSerializer{}, Named("Talk")))
	assert.Len(t, Bind(reg, nil, &stubSerializer{}, Named("Talk"), ForVersions("LEGACY")), 1)
}

func TestResourceName(t *testing.T) {
	tests := []struct {
		name string
		s    Serializer
		want string
	}{
		{"pointer", &TalkSerializer{}, "TalkSerializer"},
		{"value", TalkSerializer{}, "TalkSerializer"},
		{"func adapter", SerializerFunc(nil), "SerializerFunc"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceName(tt.s))
		})
	}
}
