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

package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
	"github.com/NVIDIA/serializer-registry/pkg/resolver"
)

// Registry is the lookup side of registry.Registry.
type Registry interface {
	Lookup(resource string, v apiversion.Version) (registry.Serializer, error)
}

// Dispatcher combines a Resolver with a Registry. It holds no mutable state
// and is safe for concurrent use.
type Dispatcher struct {
	registry Registry
	resolver resolver.Resolver
}

// New returns a Dispatcher.
func New(reg Registry, res resolver.Resolver) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		resolver: res,
	}
}

// Resolve returns the serializer for resource in the version resolved for req.
func (d *Dispatcher) Resolve(ctx context.Context, resource string, req resolver.Request) (registry.Serializer, error) {
	s, _, err := d.ResolveVersion(ctx, resource, req)
	return s, err
}

// ResolveVersion is Resolve that also reports the resolved version. The
// version is returned with a NOT_REGISTERED error too, so transports can
// still report what was attempted.
func (d *Dispatcher) ResolveVersion(ctx context.Context, resource string, req resolver.Request) (registry.Serializer, apiversion.Version, error) {
	v, err := d.resolver.Resolve(ctx, req)
	if err != nil {
		outcome := outcomeError
		if vsrerrors.CodeOf(err) == vsrerrors.ErrCodeUnsupportedVersion {
			outcome = outcomeUnsupportedVersion
		}
		dispatchTotal.WithLabelValues(unknownLabel, unknownLabel, outcome).Inc()
		slog.Debug("version resolution failed", "resource", resource, "error", err)
		return nil, "", fmt.Errorf("failed to resolve API version: %w", err)
	}
	resolvedVersionsTotal.WithLabelValues(v.String()).Inc()

	s, err := d.registry.Lookup(resource, v)
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, registry.ErrNotRegistered) {
			outcome = outcomeNotRegistered
		}
		dispatchTotal.WithLabelValues(unknownLabel, v.String(), outcome).Inc()
		slog.Warn("no serializer for resolved version",
			"resource", resource,
			"version", v,
			"error", err)
		return nil, v, err
	}

	dispatchTotal.WithLabelValues(resource, v.String(), outcomeOK).Inc()
	return s, v, nil
}
