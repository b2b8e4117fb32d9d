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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

type failingPins struct{ err error }

func (f failingPins) Get(context.Context, Credential) (apiversion.Version, bool, error) {
	return "", false, f.err
}

func (f failingPins) Pin(context.Context, Credential, apiversion.Version) error {
	return f.err
}

func testCatalog() *apiversion.Catalog {
	return apiversion.MustNewCatalog(
		apiversion.Versions("LEGACY", "DEV_PREVIEW"),
		apiversion.Versions("2023.1"),
		apiversion.Versions("2020.1"),
	)
}

func TestNegotiating_ExplicitToken(t *testing.T) {
	pins := NewMemoryPinStore()
	n, err := NewNegotiating(testCatalog(), WithPinStore(pins))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name      string
		token     apiversion.Version
		want      apiversion.Version
		wantErr   bool
		errSubstr string
	}{
		{name: "current", token: "DEV_PREVIEW", want: "DEV_PREVIEW"},
		{name: "deprecated is still served", token: "2023.1", want: "2023.1"},
		{name: "retired", token: "2020.1", wantErr: true, errSubstr: "retired"},
		{name: "unknown", token: "DEV_PREVIEW2", wantErr: true, errSubstr: "not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Resolve(ctx, StaticRequest{Token: tt.token, CredentialID: "cred"})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
				assert.Equal(t, vsrerrors.ErrCodeUnsupportedVersion, vsrerrors.CodeOf(err))
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// Explicit tokens never create pins.
	assert.Equal(t, 0, pins.Len())
}

func TestNegotiating_DefaultAndPin(t *testing.T) {
	pins := NewMemoryPinStore()
	n, err := NewNegotiating(testCatalog(), WithPinStore(pins))
	require.NoError(t, err)
	ctx := context.Background()

	got, err := n.Resolve(ctx, StaticRequest{CredentialID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, apiversion.Current, got)

	pinned, ok, err := pins.Get(ctx, Credential{ID: "alice"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, apiversion.Current, pinned)

	// Anonymous requests get the default without pinning.
	got, err = n.Resolve(ctx, StaticRequest{})
	require.NoError(t, err)
	assert.Equal(t, apiversion.Current, got)
	assert.Equal(t, 1, pins.Len())
}

func TestNegotiating_UsesPin(t *testing.T) {
	pins := NewMemoryPinStore()
	ctx := context.Background()
	require.NoError(t, pins.Pin(ctx, Credential{ID: "bob"}, "2023.1"))

	n, err := NewNegotiating(testCatalog(), WithPinStore(pins))
	require.NoError(t, err)

	got, err := n.Resolve(ctx, StaticRequest{CredentialID: "bob"})
	require.NoError(t, err)
	assert.Equal(t, apiversion.Version("2023.1"), got)

	// An explicit token overrides the pin for this request only.
	got, err = n.Resolve(ctx, StaticRequest{CredentialID: "bob", Token: "DEV_PREVIEW"})
	require.NoError(t, err)
	assert.Equal(t, apiversion.DevPreview, got)

	pinned, _, _ := pins.Get(ctx, Credential{ID: "bob"})
	assert.Equal(t, apiversion.Version("2023.1"), pinned)
}

func TestNegotiating_StalePinIsReplaced(t *testing.T) {
	pins := NewMemoryPinStore()
	ctx := context.Background()
	require.NoError(t, pins.Pin(ctx, Credential{ID: "carol"}, "2020.1"))

	n, err := NewNegotiating(testCatalog(), WithPinStore(pins))
	require.NoError(t, err)

	got, err := n.Resolve(ctx, StaticRequest{CredentialID: "carol"})
	require.NoError(t, err)
	assert.Equal(t, apiversion.Current, got)

	pinned, _, _ := pins.Get(ctx, Credential{ID: "carol"})
	assert.Equal(t, apiversion.Current, pinned)
}

func TestNegotiating_PinStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	n, err := NewNegotiating(testCatalog(), WithPinStore(failingPins{err: boom}))
	require.NoError(t, err)

	_, err = n.Resolve(context.Background(), StaticRequest{CredentialID: "dave"})
	assert.ErrorIs(t, err, boom)

	// Requests that never touch the store are unaffected.
	got, err := n.Resolve(context.Background(), StaticRequest{Token: "LEGACY", CredentialID: "dave"})
	require.NoError(t, err)
	assert.Equal(t, apiversion.Legacy, got)
}

func TestNewNegotiating_Validation(t *testing.T) {
	_, err := NewNegotiating(nil)
	assert.Error(t, err)

	_, err = NewNegotiating(testCatalog(), WithDefault("2020.1"))
	assert.Error(t, err)
}
