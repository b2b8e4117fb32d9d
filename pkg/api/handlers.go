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
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/defaults"
	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
	"github.com/NVIDIA/serializer-registry/pkg/header"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
	"github.com/NVIDIA/serializer-registry/pkg/resolver"
	"github.com/NVIDIA/serializer-registry/pkg/serializer"
	"github.com/NVIDIA/serializer-registry/pkg/server"
)

// VersionsResponse is the body of GET /v1/versions.
type VersionsResponse struct {
	Supported []apiversion.Version `json:"supported" yaml:"supported"`
	Versions  []apiversion.Entry   `json:"versions" yaml:"versions"`
}

// ListResponse is the body of GET /v1/{resource}.
type ListResponse struct {
	header.Header `json:",inline" yaml:",inline"`
	Items         []any `json:"items" yaml:"items"`
}

// ItemResponse is the body of GET /v1/{resource}/{id}.
type ItemResponse struct {
	header.Header `json:",inline" yaml:",inline"`
	Item          any `json:"item" yaml:"item"`
}

func (s *Service) handleVersions(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, VersionsResponse{
		Supported: s.catalog.Supported(),
		Versions:  s.catalog.Entries(),
	})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	resource := chi.URLParam(r, "resource")

	items, err := s.store.List(resource)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list resource", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ResourceHandlerTimeout)
	defer cancel()

	ser, v, ok := s.dispatch(ctx, w, r, resource)
	if !ok {
		return
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		rep, err := ser.Serialize(ctx, item)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to serialize resource",
				map[string]any{"resource": resource, "version": v})
			return
		}
		out = append(out, rep)
	}

	serializer.RespondJSON(w, http.StatusOK, ListResponse{
		Header: documentHeader(resource, v),
		Items:  out,
	})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	item, err := s.store.Get(resource, id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to get resource", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ResourceHandlerTimeout)
	defer cancel()

	ser, v, ok := s.dispatch(ctx, w, r, resource)
	if !ok {
		return
	}

	rep, err := ser.Serialize(ctx, item)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to serialize resource",
			map[string]any{"resource": resource, "version": v})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ItemResponse{
		Header: documentHeader(resource, v),
		Item:   rep,
	})
}

// dispatch resolves the serializer for resource and sets the version
// headers. It writes the error response and returns false on failure.
func (s *Service) dispatch(ctx context.Context, w http.ResponseWriter, r *http.Request,
	resource string) (registry.Serializer, apiversion.Version, bool) {

	w.Header().Add("Vary", resolver.HeaderAPIVersion)
	w.Header().Add("Vary", "Accept")

	found, v, err := s.dispatcher.ResolveVersion(ctx, resource, resolver.FromHTTP(r))
	if err != nil {
		if errors.Is(err, resolver.ErrUnsupportedVersion) {
			w.Header().Set(resolver.HeaderAPIVersionsSupported, joinVersions(s.catalog.Supported()))
		}
		if !v.IsEmpty() {
			w.Header().Set(resolver.HeaderAPIVersion, v.String())
		}
		server.WriteErrorFromErr(w, r, err, "Failed to resolve serializer",
			map[string]any{"resource": resource})
		return nil, v, false
	}

	w.Header().Set(resolver.HeaderAPIVersion, v.String())
	if s.catalog.IsDeprecated(v) {
		deprecation := "true"
		if at := s.catalog.DeprecatedAt(v); at != nil {
			deprecation = at.UTC().Format(http.TimeFormat)
		}
		w.Header().Set(resolver.HeaderDeprecation, deprecation)
	}
	return found, v, true
}

func documentHeader(resource string, v apiversion.Version) header.Header {
	return *header.New(
		header.WithKind(header.Kind(resource)),
		header.WithAPIVersion(v),
	)
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	server.WriteError(w, r, http.StatusMethodNotAllowed, vsrerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func joinVersions(vs []apiversion.Version) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
