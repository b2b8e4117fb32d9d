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

// Package defaults centralizes timeouts and limits used across the service.
//
// Values are grouped by the component that consumes them: the HTTP server,
// outbound HTTP fetches (remote catalog documents), Kubernetes ConfigMap
// access, version pinning and rate limiting.
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
//	defer cancel()
//
// Server settings here are only starting points; server.NewConfig overlays
// environment and file configuration on top of them.
package defaults
