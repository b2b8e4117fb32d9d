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

// Package resolver decides which API version serves a request.
//
// Two policies implement Resolver:
//
//   - Fixed always answers with one version (apiversion.Current by default)
//     and ignores everything the request carries. It is the active policy.
//   - Negotiating honours an explicit version token, then a version pinned
//     to the caller's credential, and otherwise hands out its default and
//     pins it. It is selected only by configuration (policy "negotiate").
//
// Requests are described by the Request interface so the policies stay
// transport agnostic; FromHTTP adapts an *http.Request and StaticRequest
// covers the CLI and tests.
package resolver
