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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Two codes are specific to serializer dispatch:
//
//   - ErrCodeNotRegistered: no serializer is bound for a (resource, version)
//     pair. This is always a programming or configuration defect and maps to
//     an internal error at the service boundary.
//   - ErrCodeUnsupportedVersion: the client requested a version outside the
//     supported set. This is a client-facing error.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotRegistered,
//	    "no serializer registered",
//	    registry.ErrNotRegistered,
//	    map[string]any{
//	        "resource": "Submission",
//	        "version":  "LEGACY",
//	    },
//	)
//
// CodeOf extracts the code from any error chain so transports can map it:
//
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeUnsupportedVersion:
//	    // 406
//	}
package errors
