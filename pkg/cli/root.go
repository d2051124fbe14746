/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
	"github.com/stackwise/invctl/pkg/version"
)

// New assembles the root command.
func New() *cli.Command {
	root := &cli.Command{
		Name:                  toolName,
		Usage:                 "Inventory, instance and monitoring client",
		Version:               version.Version(),
		EnableShellCompletion: true,
		Description: `invctl issues operations against the CMDB, the cloud-instance control API
and the monitoring API, and renders the results as aligned text, CSV, JSON,
YAML or a table.

Exit codes: 0 success, 1 usage or generic error, 2 unknown command,
3 unknown instance command, 4 waitfor timeout.`,
		Commands: []*cli.Command{
			cmdbKindCmd(record.KindSystem, []string{"sys"}),
			cmdbKindCmd(record.KindService, []string{"svc"}),
			cmdbKindCmd(record.KindEnvironment, []string{"env"}),
			instanceCmd(),
			waitforCmd(),
			treeCmd(),
			alertsCmd(),
			checksCmd(),
			versionCmd(),
		},
	}

	// Bare "invctl" prints help; "invctl frobnicate" is an unknown command
	// with its own exit code and a nearest-match hint.
	root.Action = func(_ context.Context, cmd *cli.Command) error {
		if name := cmd.Args().First(); name != "" {
			return unknownSubcommand(invErrors.ErrCodeUnknownCommand,
				toolName, name, commandNames(root.Commands))
		}
		return cli.ShowAppHelp(cmd)
	}

	return root
}

// Run executes the CLI with the given arguments (including the program name).
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}
