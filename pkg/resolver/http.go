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

package resolver

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
)

// HTTP header and media type conventions for version selection.
const (
	// HeaderAPIVersion carries the requested version on requests and the
	// served version on responses.
	HeaderAPIVersion = "X-API-Version"

	// HeaderAPIVersionsSupported lists the supported versions on responses.
	HeaderAPIVersionsSupported = "X-API-Versions-Supported"

	// HeaderDeprecation marks responses served with a deprecated version.
	HeaderDeprecation = "Deprecation"

	// MediaTypePrefix and MediaTypeSuffix frame a version token in Accept,
	// e.g. application/vnd.serializer-registry.DEV_PREVIEW+json.
	MediaTypePrefix = "application/vnd.serializer-registry."
	MediaTypeSuffix = "+json"
)

var authSchemes = []string{"token", "bearer"}

type httpRequest struct {
	token apiversion.Version
	cred  Credential
}

// FromHTTP extracts a Request from r. The version token comes from the
// X-API-Version header or, failing that, from a vendor media type in Accept.
// The credential comes from "Authorization: Token <secret>" or
// "Authorization: Bearer <secret>" and is identified by the SHA-256 of the
// secret.
func FromHTTP(r *http.Request) Request {
	req := httpRequest{}

	if v := strings.TrimSpace(r.Header.Get(HeaderAPIVersion)); v != "" {
		req.token = apiversion.Version(v)
	} else {
		req.token = versionFromAccept(r.Header.Values("Accept"))
	}

	if secret := secretFromAuthorization(r.Header.Get("Authorization")); secret != "" {
		req.cred = Credential{ID: hashSecret(secret)}
	}
	return req
}

func (r httpRequest) VersionToken() (apiversion.Version, bool) {
	return r.token, !r.token.IsEmpty()
}

func (r httpRequest) Credential() (Credential, bool) {
	return r.cred, r.cred.ID != ""
}

// versionFromAccept returns the first version token found in the Accept
// header values.
func versionFromAccept(values []string) apiversion.Version {
	for _, value := range values {
		for _, mediaRange := range strings.Split(value, ",") {
			mt, _, _ := strings.Cut(mediaRange, ";")
			mt = strings.TrimSpace(mt)
			if !strings.HasPrefix(mt, MediaTypePrefix) || !strings.HasSuffix(mt, MediaTypeSuffix) {
				continue
			}
			token := strings.TrimSuffix(strings.TrimPrefix(mt, MediaTypePrefix), MediaTypeSuffix)
			if token != "" {
				return apiversion.Version(token)
			}
		}
	}
	return ""
}

func secretFromAuthorization(header string) string {
	scheme, secret, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	for _, s := range authSchemes {
		if strings.EqualFold(scheme, s) {
			return strings.TrimSpace(secret)
		}
	}
	return ""
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// MediaType returns the vendor media type that requests version v.
func MediaType(v apiversion.Version) string {
	return MediaTypePrefix + v.String() + MediaTypeSuffix
}
