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

// Package cli implements the vsr command-line tool for inspecting the
// version catalog and the serializer registry.
//
// # Commands
//
// versions - List catalog versions and their status:
//
//	vsr versions --catalog catalog.yaml --format table
//
// registry - List registered (resource, version) bindings:
//
//	vsr registry --resource Speaker
//
// resolve - Show which serializer would serve a request:
//
//	vsr resolve --resource Speaker --token DEV_PREVIEW --policy negotiate
//
// # Global Flags
//
//	--catalog      Catalog source: file, HTTP(S) URL or cm://namespace/name (env VSR_CATALOG)
//	--policy       Resolver policy: fixed or negotiate (env VSR_RESOLVER_POLICY)
//	--kubeconfig   Kubeconfig used for cm:// sources (env KUBECONFIG)
//	--output, -o   Output file path or cm://namespace/name (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Logging verbosity: debug, info, warn, error (env LOG_LEVEL)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or command failure
package cli
