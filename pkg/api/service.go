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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/dispatcher"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
	"github.com/NVIDIA/serializer-registry/pkg/resolver"
	"github.com/NVIDIA/serializer-registry/pkg/resources"
	"github.com/NVIDIA/serializer-registry/pkg/serializer"
	"github.com/NVIDIA/serializer-registry/pkg/server"
)

// Service holds the components behind the resource endpoints.
type Service struct {
	catalog    *apiversion.Catalog
	registry   *registry.Registry
	dispatcher *dispatcher.Dispatcher
	store      *resources.Store
	pins       *resolver.MemoryPinStore
}

// NewService loads the catalog named by cfg, registers every serializer
// and builds the resolver selected by cfg.ResolverPolicy.
func NewService(ctx context.Context, cfg *server.Config, opts ...serializer.Option) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config is required")
	}

	cat, err := apiversion.LoadCatalog(ctx, cfg.Catalog, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load version catalog: %w", err)
	}

	reg := registry.New()
	resources.RegisterAll(reg, cat)

	policy, err := resolver.ParsePolicy(cfg.ResolverPolicy)
	if err != nil {
		return nil, err
	}

	svc := &Service{
		catalog:  cat,
		registry: reg,
		store:    resources.SampleStore(),
	}

	var resolverOpts []resolver.Option
	if policy == resolver.PolicyNegotiate {
		svc.pins = resolver.NewMemoryPinStore()
		resolverOpts = append(resolverOpts, resolver.WithPinStore(svc.pins))
	}

	res, err := resolver.New(policy, cat, resolverOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s resolver: %w", policy, err)
	}
	svc.dispatcher = dispatcher.New(reg, res)

	slog.Info("service initialized",
		"policy", policy,
		"catalog", cat.Supported(),
		"bindings", reg.Count())

	return svc, nil
}

// Handlers returns the routes served by the service, keyed by chi pattern.
func (s *Service) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/versions":        s.handleVersions,
		"/v1/{resource}":      s.handleList,
		"/v1/{resource}/{id}": s.handleGet,
	}
}

// Start runs background maintenance until ctx is done. It returns
// immediately when the resolver keeps no state.
func (s *Service) Start(ctx context.Context) {
	if s.pins != nil {
		s.pins.Start(ctx)
	}
}
