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

// Package dispatcher selects the serializer for a request: it resolves the
// API version and then looks up the exact (resource, version) binding.
//
//	d := dispatcher.New(reg, resolver.NewFixed(""))
//	s, v, err := d.ResolveVersion(ctx, "Submission", resolver.FromHTTP(r))
//
// Errors carry the codes of the stage that failed: UNSUPPORTED_VERSION from
// the resolver, NOT_REGISTERED from the registry. Every call is counted in
// vsr_dispatch_total.
package dispatcher
