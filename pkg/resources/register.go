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

package resources

import (
	"log/slog"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
)

// Resource names used in URLs and registry keys.
const (
	ResourceSubmission = "Submission"
	ResourceSpeaker    = "Speaker"
)

// RegisterAll binds every serializer in this package into reg. Bindings
// without explicit versions cover cat.Supported() as of this call.
func RegisterAll(reg *registry.Registry, cat *apiversion.Catalog) {
	var keys []registry.Key

	sub := &SubmissionSerializer{}
	keys = append(keys, registry.Bind(reg, cat, sub)...)
	keys = append(keys, registry.Bind(reg, cat, sub, registry.Named(ResourceSubmission))...)

	keys = append(keys, registry.Bind(reg, cat, &SpeakerSerializer{},
		registry.Named(ResourceSpeaker),
		registry.ForVersions(apiversion.Legacy))...)
	keys = append(keys, registry.Bind(reg, cat, &SpeakerPreviewSerializer{},
		registry.Named(ResourceSpeaker),
		registry.ForVersions(apiversion.DevPreview))...)

	slog.Info("serializers registered", "bindings", len(keys), "resources", reg.Resources())
}
