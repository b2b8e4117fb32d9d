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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/dispatcher"
	"github.com/NVIDIA/serializer-registry/pkg/header"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
	"github.com/NVIDIA/serializer-registry/pkg/resolver"
	"github.com/NVIDIA/serializer-registry/pkg/resources"
)

// Resolution is the output of the resolve command.
type Resolution struct {
	header.Header `json:",inline" yaml:",inline"`
	Resource      string             `json:"resource" yaml:"resource"`
	Policy        resolver.Policy    `json:"policy" yaml:"policy"`
	Requested     apiversion.Version `json:"requested,omitempty" yaml:"requested,omitempty"`
	Version       apiversion.Version `json:"version" yaml:"version"`
	Status        apiversion.Status  `json:"status" yaml:"status"`
	Serializer    string             `json:"serializer" yaml:"serializer"`
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Show which serializer would serve a request",
		Description: `Resolves the API version for a simulated request with the selected
policy and looks up the serializer bound to (resource, version).

With the fixed policy the token and credential are ignored. With the
negotiate policy a supported token wins and an unsupported one fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "resource",
				Aliases:  []string{"r"},
				Usage:    "Resource name, e.g. Speaker",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Requested API version",
			},
			&cli.StringFlag{
				Name:  "credential",
				Usage: "Opaque client identity used for version pinning",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := withTimeout(ctx)
			defer cancel()

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			policy, err := resolver.ParsePolicy(cmd.String("policy"))
			if err != nil {
				return err
			}
			res, err := resolver.New(policy, cat)
			if err != nil {
				return err
			}

			reg := registry.New()
			resources.RegisterAll(reg, cat)

			resource := cmd.String("resource")
			req := resolver.StaticRequest{
				Token:        apiversion.Version(cmd.String("token")),
				CredentialID: cmd.String("credential"),
			}

			s, v, err := dispatcher.New(reg, res).ResolveVersion(ctx, resource, req)
			if err != nil {
				return fmt.Errorf("cannot serve %s: %w", resource, err)
			}

			out := Resolution{
				Resource:   resource,
				Policy:     policy,
				Requested:  req.Token,
				Version:    v,
				Status:     cat.Status(v),
				Serializer: fmt.Sprintf("%T", s),
			}
			out.Init(header.KindResolution, v, version)

			return writeDocument(ctx, cmd, out)
		},
	}
}
