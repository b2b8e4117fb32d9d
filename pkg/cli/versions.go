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
	"github.com/NVIDIA/serializer-registry/pkg/header"
)

// VersionsReport is the output of the versions command.
type VersionsReport struct {
	header.Header `json:",inline" yaml:",inline"`
	Supported     []apiversion.Version `json:"supported" yaml:"supported"`
	Versions      []apiversion.Entry   `json:"versions" yaml:"versions"`
}

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List catalog versions and their status",
		Description: `Lists every version known to the catalog with its status:
  - current:     actively supported
  - preview:     current, but subject to change
  - deprecated:  still served, scheduled for removal
  - unsupported: retired, requests for it are rejected`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := withTimeout(ctx)
			defer cancel()

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			report := VersionsReport{
				Supported: cat.Supported(),
				Versions:  cat.Entries(),
			}
			report.Init(header.KindVersionList, "", version)

			return writeDocument(ctx, cmd, report)
		},
	}
}
