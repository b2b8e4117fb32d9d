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

package server

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
	"github.com/NVIDIA/serializer-registry/pkg/serializer"
)

// ErrorResponse is the body of every error answered by the server.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse with the given status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code vsrerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err onto an ErrorResponse. A StructuredError
// supplies the code, message and context; anything else is reported as an
// internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *vsrerrors.StructuredError
	if !errors.As(err, &se) {
		slog.Error("unstructured error in handler",
			"requestID", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err)
		WriteError(w, r, http.StatusInternalServerError, vsrerrors.ErrCodeInternal, fallbackMessage,
			retryableFromCode(vsrerrors.ErrCodeInternal),
			mergeDetails(extraDetails, map[string]any{"error": err.Error()}))
		return
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
	}

	message := se.Message
	if message == "" {
		message = fallbackMessage
	}

	status := HTTPStatusFromCode(se.Code)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", RequestID(r.Context()),
			"path", r.URL.Path,
			"code", se.Code,
			"error", err)
	}

	WriteError(w, r, status, se.Code, message, retryableFromCode(se.Code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code vsrerrors.ErrorCode) int {
	switch code {
	case vsrerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case vsrerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case vsrerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case vsrerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case vsrerrors.ErrCodeUnsupportedVersion:
		return http.StatusNotAcceptable
	case vsrerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case vsrerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case vsrerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case vsrerrors.ErrCodeNotRegistered, vsrerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the same request.
func retryableFromCode(code vsrerrors.ErrorCode) bool {
	switch code {
	case vsrerrors.ErrCodeTimeout,
		vsrerrors.ErrCodeUnavailable,
		vsrerrors.ErrCodeRateLimitExceeded,
		vsrerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map holding a then b, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
