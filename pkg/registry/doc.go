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

// Package registry maps (resource, version) pairs to serializers.
//
// A Registry is filled once at startup, usually through Bind, and then read
// concurrently by the dispatcher:
//
//	reg := registry.New()
//	registry.Bind(reg, cat, &SubmissionSerializer{})                        // every supported version
//	registry.Bind(reg, cat, &SpeakerSerializer{}, registry.Named("Speaker"),
//	    registry.ForVersions(apiversion.Legacy))
//
//	s, err := reg.Lookup("Speaker", apiversion.Legacy)
//
// Lookup is an exact match. There is no fallback to a neighbouring version:
// a miss returns an error with code NOT_REGISTERED that wraps
// ErrNotRegistered. Registering a key twice replaces the earlier binding.
package registry
