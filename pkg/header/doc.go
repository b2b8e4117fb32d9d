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

// Package header provides the common document header carried by every
// response body and CLI report.
//
// A header names the document kind, the API version whose serializers
// shaped it, and free-form metadata:
//
//	h := header.New(
//	    header.WithKind("Speaker"),
//	    header.WithAPIVersion(apiversion.Legacy),
//	)
//
// Init fills a header in place and stamps it with the generation time:
//
//	var report VersionsReport
//	report.Init(header.KindVersionList, "", version)
//
// Embed Header in a document type with an inline yaml tag so kind and
// apiVersion appear at the top level in both JSON and YAML.
package header
