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
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/header"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
	"github.com/NVIDIA/serializer-registry/pkg/resources"
	"github.com/NVIDIA/serializer-registry/pkg/serializer"
)

// Binding is one row of the registry command output.
type Binding struct {
	Resource   string             `json:"resource" yaml:"resource"`
	Version    apiversion.Version `json:"version" yaml:"version"`
	Status     apiversion.Status  `json:"status" yaml:"status"`
	Serializer string             `json:"serializer" yaml:"serializer"`
}

// BindingList is the structured output of the registry command.
type BindingList struct {
	header.Header `json:",inline" yaml:",inline"`
	Bindings      []Binding `json:"bindings" yaml:"bindings"`
}

var bindingColumns = []string{"resource", "version", "status", "serializer"}

func registryCmd() *cli.Command {
	return &cli.Command{
		Name:  "registry",
		Usage: "List registered serializer bindings",
		Description: `Builds the registry the service would build at startup against the
selected catalog and lists every (resource, version) binding.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "resource",
				Usage: "Only list bindings for this resource",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := withTimeout(ctx)
			defer cancel()

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			reg := registry.New()
			resources.RegisterAll(reg, cat)

			rows := bindings(reg, cat, cmd.String("resource"))

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if format != serializer.FormatTable {
				list := BindingList{Bindings: rows}
				list.Init(header.KindBindingList, "", version)
				return writeDocument(ctx, cmd, list)
			}
			return writeBindingTable(cmd, rows)
		},
	}
}

// bindings lists the registry keys in key order, optionally restricted to
// one resource.
func bindings(reg *registry.Registry, cat *apiversion.Catalog, resource string) []Binding {
	keys := reg.Keys()
	rows := make([]Binding, 0, len(keys))
	for _, k := range keys {
		if resource != "" && k.Resource != resource {
			continue
		}
		s, err := reg.Lookup(k.Resource, k.Version)
		if err != nil {
			slog.Warn("binding vanished while listing", "key", k.String(), "error", err)
			continue
		}
		rows = append(rows, Binding{
			Resource:   k.Resource,
			Version:    k.Version,
			Status:     cat.Status(k.Version),
			Serializer: fmt.Sprintf("%T", s),
		})
	}
	return rows
}

func writeBindingTable(cmd *cli.Command, rows []Binding) error {
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		return renderBindings(stdout(cmd), rows)
	}
	if serializer.IsConfigMapURI(path) {
		return fmt.Errorf("table format cannot be written to a ConfigMap, use yaml or json")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	if err := renderBindings(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func renderBindings(w io.Writer, rows []Binding) error {
	title := cases.Title(language.English)
	headers := make([]string, len(bindingColumns))
	for i, c := range bindingColumns {
		headers[i] = title.String(c)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Resource, r.Version, r.Status, r.Serializer)
	}
	return tw.Flush()
}
