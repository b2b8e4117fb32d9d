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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

// Negotiating resolves in three steps:
//
//  1. an explicit version token is used if the catalog supports it, and
//     rejected with UNSUPPORTED_VERSION otherwise;
//  2. without a token, a version pinned to the caller's credential is used
//     while it remains supported;
//  3. otherwise the default version is used and, for authenticated callers,
//     pinned to the credential.
//
// Explicit tokens never change a pin.
type Negotiating struct {
	catalog  *apiversion.Catalog
	pins     PinStore
	fallback apiversion.Version
}

// NewNegotiating returns a Negotiating resolver over cat.
func NewNegotiating(cat *apiversion.Catalog, opts ...Option) (*Negotiating, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	s := newSettings(opts)
	if !cat.IsSupported(s.fallback) {
		return nil, fmt.Errorf("default version %s is not supported by the catalog", s.fallback)
	}
	if s.pins == nil {
		s.pins = NewMemoryPinStore()
	}
	return &Negotiating{
		catalog:  cat,
		pins:     s.pins,
		fallback: s.fallback,
	}, nil
}

// Resolve implements Resolver.
func (n *Negotiating) Resolve(ctx context.Context, req Request) (apiversion.Version, error) {
	if v, ok := req.VersionToken(); ok {
		if n.catalog.IsSupported(v) {
			return v, nil
		}
		return "", n.rejection(v)
	}

	cred, authenticated := req.Credential()
	if !authenticated {
		return n.fallback, nil
	}

	pinned, ok, err := n.pins.Get(ctx, cred)
	if err != nil {
		return "", fmt.Errorf("failed to read version pin: %w", err)
	}
	if ok {
		if n.catalog.IsSupported(pinned) {
			return pinned, nil
		}
		slog.Info("pinned version no longer supported, re-pinning",
			"credential", cred.ID,
			"pinned", pinned,
			"version", n.fallback)
	}

	if err := n.pins.Pin(ctx, cred, n.fallback); err != nil {
		return "", fmt.Errorf("failed to pin version: %w", err)
	}
	return n.fallback, nil
}

func (n *Negotiating) rejection(v apiversion.Version) error {
	msg := fmt.Sprintf("API version %s is not supported", v)
	if n.catalog.IsUnsupported(v) {
		msg = fmt.Sprintf("API version %s has been retired", v)
	}
	return vsrerrors.WrapWithContext(vsrerrors.ErrCodeUnsupportedVersion, msg, ErrUnsupportedVersion,
		map[string]any{
			"requested": v.String(),
			"supported": n.catalog.Supported(),
		})
}
