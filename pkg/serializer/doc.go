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

// Package serializer reads and writes documents in JSON, YAML and table form.
//
// Documents can live in local files, behind HTTP(S) URLs, or in Kubernetes
// ConfigMaps addressed as cm://namespace/name. The same addressing is used
// for reading and writing:
//
//	cat, err := serializer.FromFile[apiversion.File]("cm://vsr/catalog")
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "cm://vsr/catalog")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	err = w.Serialize(ctx, cat.File())
//
// Table output is write-only: nested values are flattened into dotted keys
// and rendered as two aligned columns.
//
// RespondJSON buffers the encoded body before writing so that an encoding
// failure never leaves a partial response on the wire.
package serializer
