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

package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

func TestFixed_IgnoresRequest(t *testing.T) {
	f := NewFixed("")
	require.Equal(t, apiversion.Current, f.Version())

	requests := []Request{
		StaticRequest{},
		StaticRequest{Token: apiversion.DevPreview},
		StaticRequest{Token: "NOT_A_VERSION"},
		StaticRequest{CredentialID: "abc"},
		StaticRequest{Token: apiversion.DevPreview, CredentialID: "abc"},
	}

	for _, req := range requests {
		got, err := f.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, apiversion.Legacy, got)
	}
}

func TestNewFixed_ExplicitVersion(t *testing.T) {
	got, err := NewFixed(apiversion.DevPreview).Resolve(context.Background(), StaticRequest{})
	require.NoError(t, err)
	assert.Equal(t, apiversion.DevPreview, got)
}

func TestStaticRequest(t *testing.T) {
	_, ok := StaticRequest{}.VersionToken()
	assert.False(t, ok)
	_, ok = StaticRequest{}.Credential()
	assert.False(t, ok)

	v, ok := StaticRequest{Token: "X"}.VersionToken()
	assert.True(t, ok)
	assert.Equal(t, apiversion.Version("X"), v)

	c, ok := StaticRequest{CredentialID: "id"}.Credential()
	assert.True(t, ok)
	assert.Equal(t, "id", c.ID)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyFixed, false},
		{"fixed", PolicyFixed, false},
		{" Negotiate ", PolicyNegotiate, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	cat := apiversion.DefaultCatalog()

	r, err := New(PolicyFixed, cat)
	require.NoError(t, err)
	assert.IsType(t, &Fixed{}, r)

	r, err = New(PolicyNegotiate, cat)
	require.NoError(t, err)
	assert.IsType(t, &Negotiating{}, r)

	_, err = New("bogus", cat)
	assert.Error(t, err)

	_, err = New(PolicyFixed, nil)
	assert.Error(t, err)
}

func TestNew_DefaultMustBeSupported(t *testing.T) {
	cat := apiversion.MustNewCatalog(apiversion.Versions("2025.1"), nil, apiversion.Versions("LEGACY"))

	for _, p := range []Policy{PolicyFixed, PolicyNegotiate} {
		_, err := New(p, cat)
		assert.Error(t, err, p)

		r, err := New(p, cat, WithDefault("2025.1"))
		require.NoError(t, err, p)
		got, err := r.Resolve(context.Background(), StaticRequest{})
		require.NoError(t, err)
		assert.Equal(t, apiversion.Version("2025.1"), got)
	}
}
