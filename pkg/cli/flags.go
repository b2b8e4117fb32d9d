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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/k8s/client"
	"github.com/NVIDIA/serializer-registry/pkg/serializer"
)

// globalFlags returns fresh flag instances so every root command owns its
// own parse state.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Usage:   "Version catalog source: file path, HTTP/HTTPS URL or ConfigMap URI (cm://namespace/name). Empty uses the built-in catalog",
			Sources: cli.EnvVars("VSR_CATALOG"),
		},
		&cli.StringFlag{
			Name:    "policy",
			Value:   "fixed",
			Usage:   "Version resolver policy (supported values: fixed, negotiate)",
			Sources: cli.EnvVars("VSR_RESOLVER_POLICY"),
		},
		&cli.StringFlag{
			Name:    "kubeconfig",
			Usage:   "Path to kubeconfig used for ConfigMap sources and outputs",
			Sources: cli.EnvVars(client.EnvKubeconfig),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default is stdout",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatYAML),
			Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

func sourceOptions(cmd *cli.Command) []serializer.Option {
	if kc := cmd.String("kubeconfig"); kc != "" {
		return []serializer.Option{serializer.WithKubeconfig(kc)}
	}
	return nil
}

func loadCatalog(ctx context.Context, cmd *cli.Command) (*apiversion.Catalog, error) {
	return apiversion.LoadCatalog(ctx, cmd.String("catalog"), sourceOptions(cmd)...)
}

// writeDocument encodes doc to --output in --format. An empty output writes
// to the root command's writer.
func writeDocument(ctx context.Context, cmd *cli.Command, doc any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var out serializer.Output
	if path := strings.TrimSpace(cmd.String("output")); path == "" {
		out = serializer.NewWriter(format, stdout(cmd))
	} else {
		out, err = serializer.NewFileWriterOrStdout(format, path, sourceOptions(cmd)...)
		if err != nil {
			return err
		}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("failed to close output", "error", cerr)
		}
	}()

	return out.Serialize(ctx, doc)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
