/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stackwise/invctl/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(_ context.Context, _ *cli.Command) error {
			info := version.Get()
			fmt.Printf("%s %s (commit %s, built %s)\n", toolName, info.Version, info.Commit, info.Date)
			return nil
		},
	}
}
