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

// Package api wires the version catalog, serializer registry, version
// resolver and dispatcher into the vsrd HTTP service.
//
// Usage:
//
//	if err := api.Serve(ctx); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (behind the server middleware chain):
//   - GET /v1/versions            - Catalog versions and their status
//   - GET /v1/{resource}          - All instances of a resource
//   - GET /v1/{resource}/{id}     - One instance of a resource
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Versioning
//
// Resource endpoints resolve an API version per request with the configured
// resolver, look up the serializer bound to (resource, version) and render
// each instance with it. Clients may ask for a version with the
// X-API-Version header or the vendor media type
// application/vnd.serializer-registry.<version>+json in Accept. Whether the
// request is honoured depends on the resolver policy:
//
//   - fixed (default): every request is served with the default version
//   - negotiate: a supported requested version wins, an unsupported one is
//     rejected with 406 Not Acceptable, and credentialed clients are pinned
//     to the version they first received
//
// Responses carry X-API-Version with the version used, and a Deprecation
// header when that version is deprecated.
package api
