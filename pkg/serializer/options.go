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

package serializer

import (
	"net/http"

	"github.com/NVIDIA/serializer-registry/pkg/k8s/client"
)

// Option configures where remote documents are read from or written to.
type Option func(*options)

type options struct {
	kube       client.Interface
	kubeconfig string
	httpClient *http.Client
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithKubeClient uses c for ConfigMap access instead of the shared client.
func WithKubeClient(c client.Interface) Option {
	return func(o *options) {
		o.kube = c
	}
}

// WithKubeconfig builds a dedicated client from the given kubeconfig path.
// It is ignored when WithKubeClient is also set.
func WithKubeconfig(path string) Option {
	return func(o *options) {
		o.kubeconfig = path
	}
}

// WithHTTPClient uses c for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// kubeClient returns the injected client, a dedicated one for an explicit
// kubeconfig, or the process-wide shared client.
func (o *options) kubeClient() (client.Interface, error) {
	if o.kube != nil {
		return o.kube, nil
	}
	if o.kubeconfig != "" {
		c, _, err := client.BuildKubeClient(o.kubeconfig)
		return c, err
	}
	c, _, err := client.GetKubeClient()
	return c, err
}

func (o *options) http() *http.Client {
	if o.httpClient != nil {
		return o.httpClient
	}
	return NewHTTPClient()
}
