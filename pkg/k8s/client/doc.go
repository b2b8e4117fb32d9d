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

// Package client builds the shared Kubernetes client used to read and write
// ConfigMap-backed documents (cm://namespace/name).
//
// The default client is created once per process and reused:
//
//	cs, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Configuration is discovered in this order: an explicit kubeconfig path,
// the KUBECONFIG environment variable, ~/.kube/config, and finally the
// in-cluster service account.
//
// Callers that need a specific cluster use BuildKubeClient, which bypasses
// the cache. Tests pass a fake clientset (k8s.io/client-go/kubernetes/fake)
// wherever an Interface is accepted.
package client
