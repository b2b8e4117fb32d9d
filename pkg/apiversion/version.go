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

package apiversion

// Version identifies one API version. Values are compared for equality only.
type Version string

const (
	// Legacy is the representation served before versioning was introduced.
	Legacy Version = "LEGACY"

	// DevPreview is the in-progress representation for early adopters.
	DevPreview Version = "DEV_PREVIEW"

	// Current is the version handed to requests that do not ask for one.
	Current = Legacy
)

// String returns the raw token.
func (v Version) String() string {
	return string(v)
}

// IsEmpty reports whether the token is blank.
func (v Version) IsEmpty() bool {
	return v == ""
}

// Versions converts raw tokens into Versions.
func Versions(tokens ...string) []Version {
	out := make([]Version, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Version(t))
	}
	return out
}

// Status describes where a version sits in the catalog.
type Status string

const (
	StatusCurrent     Status = "current"
	StatusPreview     Status = "preview"
	StatusDeprecated  Status = "deprecated"
	StatusUnsupported Status = "unsupported"
	StatusUnknown     Status = "unknown"
)

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// IsServable reports whether requests may be dispatched under this status.
func (s Status) IsServable() bool {
	switch s {
	case StatusCurrent, StatusPreview, StatusDeprecated:
		return true
	default:
		return false
	}
}
