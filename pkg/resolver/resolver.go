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
	"fmt"
	"strings"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

// ErrUnsupportedVersion is wrapped when a requested version cannot be served.
var ErrUnsupportedVersion = errors.New("unsupported API version")

// Credential identifies the caller. ID is an opaque, stable identifier and
// never the secret itself.
type Credential struct {
	ID string
}

// Request is the per-request input to a Resolver.
type Request interface {
	// VersionToken returns the version the caller asked for, if any.
	VersionToken() (apiversion.Version, bool)
	// Credential returns the caller identity, if authenticated.
	Credential() (Credential, bool)
}

// Resolver picks the version used to serve a request. The returned version
// is always in the catalog's supported set.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (apiversion.Version, error)
}

// StaticRequest is a Request built from plain values. Empty fields count
// as absent.
type StaticRequest struct {
	Token        apiversion.Version
	CredentialID string
}

// VersionToken implements Request.
func (r StaticRequest) VersionToken() (apiversion.Version, bool) {
	return r.Token, !r.Token.IsEmpty()
}

// Credential implements Request.
func (r StaticRequest) Credential() (Credential, bool) {
	return Credential{ID: r.CredentialID}, r.CredentialID != ""
}

// Fixed resolves every request to the same version.
type Fixed struct {
	version apiversion.Version
}

// NewFixed returns a Fixed resolver for v, or for apiversion.Current when v
// is empty.
func NewFixed(v apiversion.Version) *Fixed {
	if v.IsEmpty() {
		v = apiversion.Current
	}
	return &Fixed{version: v}
}

// Resolve implements Resolver. It never fails and never inspects req.
func (f *Fixed) Resolve(_ context.Context, _ Request) (apiversion.Version, error) {
	return f.version, nil
}

// Version returns the version f resolves to.
func (f *Fixed) Version() apiversion.Version {
	return f.version
}

// Policy names a resolver implementation in configuration.
type Policy string

const (
	// PolicyFixed selects Fixed.
	PolicyFixed Policy = "fixed"
	// PolicyNegotiate selects Negotiating.
	PolicyNegotiate Policy = "negotiate"
)

// ParsePolicy converts a configuration value into a Policy. Empty means fixed.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicyFixed:
		return PolicyFixed, nil
	case PolicyNegotiate:
		return PolicyNegotiate, nil
	default:
		return "", fmt.Errorf("unknown resolver policy %q, supported: %s, %s", s, PolicyFixed, PolicyNegotiate)
	}
}

// Option configures a resolver built by New or NewNegotiating.
type Option func(*settings)

type settings struct {
	fallback apiversion.Version
	pins     PinStore
}

func newSettings(opts []Option) *settings {
	s := &settings{fallback: apiversion.Current}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefault sets the version handed out when the request does not decide.
// It defaults to apiversion.Current.
func WithDefault(v apiversion.Version) Option {
	return func(s *settings) {
		if !v.IsEmpty() {
			s.fallback = v
		}
	}
}

// WithPinStore sets where Negotiating remembers per-credential versions.
// It defaults to a fresh MemoryPinStore.
func WithPinStore(p PinStore) Option {
	return func(s *settings) {
		s.pins = p
	}
}

// New builds the resolver for policy. The default version must be supported
// by cat.
func New(policy Policy, cat *apiversion.Catalog, opts ...Option) (Resolver, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	switch policy {
	case "", PolicyFixed:
		s := newSettings(opts)
		if !cat.IsSupported(s.fallback) {
			return nil, fmt.Errorf("default version %s is not supported by the catalog", s.fallback)
		}
		return NewFixed(s.fallback), nil
	case PolicyNegotiate:
		return NewNegotiating(cat, opts...)
	default:
		return nil, fmt.Errorf("unknown resolver policy %q", policy)
	}
}
