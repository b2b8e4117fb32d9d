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

// Package server provides the HTTP server shared by the serializer registry
// service: configuration, a middleware chain, health probes, structured error
// responses and graceful shutdown.
//
// Handlers are supplied by the caller as a map of chi route patterns to
// handler functions:
//
//	s := server.New(
//	    server.WithName("vsrd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/{resource}": h.List,
//	    }),
//	)
//	err := s.Run(ctx)
//
// Every caller-supplied handler runs behind the middleware chain
// (metrics, request ID, panic recovery, rate limit, logging). The /health,
// /ready and /metrics endpoints bypass it.
//
// Configuration starts from the values in pkg/defaults and is overridden by
// an optional YAML file named by VSR_CONFIG and by VSR_* environment
// variables.
package server
