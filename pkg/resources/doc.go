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

// Package resources holds the conference resources served by the API and
// the serializers that render them per API version.
//
// RegisterAll is the single startup entry point that binds every serializer
// into a registry:
//
//	reg := registry.New()
//	resources.RegisterAll(reg, cat)
//
// Bindings:
//
//	SubmissionSerializer      all supported versions, as "SubmissionSerializer" and "Submission"
//	SpeakerSerializer         LEGACY only, as "Speaker"
//	SpeakerPreviewSerializer  DEV_PREVIEW only, as "Speaker"
package resources
