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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/serializer-registry/pkg/defaults"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap document addresses.
	ConfigMapURIScheme = "cm://"

	// ConfigMapFormatKey records the format of the stored document.
	ConfigMapFormatKey = "format"

	// ConfigMapTimestampKey records when the document was written.
	ConfigMapTimestampKey = "timestamp"

	configMapContentPrefix = "content."
	fieldManager           = "serializer-registry"
)

// IsConfigMapURI reports whether source addresses a ConfigMap.
func IsConfigMapURI(source string) bool {
	return strings.HasPrefix(strings.TrimSpace(source), ConfigMapURIScheme)
}

// ParseConfigMapURI splits cm://namespace/name into its parts.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	ns, n, ok := strings.Cut(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if !ok {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(ns)
	name = strings.TrimSpace(n)
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}

// ConfigMapDataKey is the data key a document in format f is stored under.
func ConfigMapDataKey(f Format) string {
	return configMapContentPrefix + f.Extension()
}

// ConfigMapWriter stores a serialized document in a ConfigMap. The ConfigMap
// is created or updated with Server-Side Apply.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	opts      *options
	now       func() time.Time
}

// NewConfigMapWriter returns a writer for namespace/name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...Option) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		opts:      newOptions(opts),
		now:       time.Now,
	}
}

// Serialize encodes doc and applies it to the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, doc any) error {
	var buf strings.Builder
	if err := encode(w.format, &buf, doc); err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kc, err := w.opts.kubeClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "serializer-registry",
			"app.kubernetes.io/managed-by": fieldManager,
		}).
		WithData(map[string]string{
			ConfigMapDataKey(w.format): buf.String(),
			ConfigMapFormatKey:         string(w.format),
			ConfigMapTimestampKey:      w.now().UTC().Format(time.RFC3339),
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	if _, err := kc.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	}); err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// readConfigMap returns the stored document and its format.
// The format key wins; otherwise the first content key found is used.
func readConfigMap(ctx context.Context, o *options, namespace, name string) (Format, []byte, error) {
	kc, err := o.kubeClient()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := kc.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	if f, ok := cm.Data[ConfigMapFormatKey]; ok {
		format, err := ParseFormat(f)
		if err != nil {
			return "", nil, fmt.Errorf("ConfigMap %s/%s: %w", namespace, name, err)
		}
		content, ok := cm.Data[ConfigMapDataKey(format)]
		if !ok {
			return "", nil, fmt.Errorf("ConfigMap %s/%s has no %s key", namespace, name, ConfigMapDataKey(format))
		}
		return format, []byte(content), nil
	}

	for _, f := range []Format{FormatYAML, FormatJSON} {
		if content, ok := cm.Data[ConfigMapDataKey(f)]; ok {
			return f, []byte(content), nil
		}
	}
	return "", nil, fmt.Errorf("ConfigMap %s/%s has no document content", namespace, name)
}
