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

// Package apiversion defines API version identifiers and the version catalog.
//
// A Version is an opaque token such as "LEGACY" or "DEV_PREVIEW". No ordering
// between versions is assumed; only catalog membership matters.
//
// The Catalog partitions known versions into three disjoint sets:
//
//   - current: actively supported, recommended for new integrations
//   - deprecated: still served, but discouraged
//   - unsupported: retired; kept only so error messages can name them
//
// Supported() is current ∪ deprecated and is the only set consulted for
// dispatch and for registration defaults. A version in the unsupported set
// never dispatches.
//
// Catalogs are immutable once built. Build one at process start, either with
// DefaultCatalog or from a document:
//
//	cat, err := apiversion.LoadCatalog("cm://serializers/api-versions")
//	if err != nil {
//	    return fmt.Errorf("failed to load catalog: %w", err)
//	}
//	for _, v := range cat.Supported() {
//	    fmt.Println(v, cat.Status(v))
//	}
package apiversion
