/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
)

// cmdbKindCmd builds the list/show command pair for one CMDB record kind.
// system, service and environment share this shape; only the kind differs.
func cmdbKindCmd(kind record.Kind, aliases []string) *cli.Command {
	plural := kind.String() + "s"

	c := &cli.Command{
		Name:                  kind.String(),
		Aliases:               aliases,
		EnableShellCompletion: true,
		Usage:                 fmt.Sprintf("Query %s records from the CMDB", kind),
		Description: fmt.Sprintf(`Query and display %s records.

# Examples

List all %s:
  invctl %s list

List with filter conditions (passed to the CMDB verbatim):
  invctl %s list status=up environment=prod

Project specific fields and override a column width:
  invctl %s list --fields name=32,status

Show one record with every field it carries:
  invctl %s show NAME`, plural, plural, kind, kind, kind, kind),
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   fmt.Sprintf("List %s matching the given conditions", plural),
				Flags:   append(append([]cli.Flag{}, outputFlags...), commonFlags...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCMDBList(ctx, cmd, kind)
				},
			},
			{
				Name:    "show",
				Aliases: []string{"info"},
				Usage:   fmt.Sprintf("Show one %s record in full", kind),
				Flags: append(append([]cli.Flag{
					labelFlag,
				}, outputFlags...), commonFlags...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCMDBShow(ctx, cmd, kind)
				},
			},
		},
	}

	c.Action = func(_ context.Context, cmd *cli.Command) error {
		if name := cmd.Args().First(); name != "" {
			return unknownSubcommand(invErrors.ErrCodeUnknownCommand,
				kind.String(), name, commandNames(c.Commands))
		}
		return cli.ShowSubcommandHelp(cmd)
	}

	return c
}

func runCMDBList(ctx context.Context, cmd *cli.Command, kind record.Kind) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	fields, err := resolveFields(e, kind, cmd)
	if err != nil {
		return err
	}
	w, err := newRenderWriter(cmd, e)
	if err != nil {
		return err
	}

	records, err := e.inv.Query(ctx, kind, cmd.Args().Slice())
	if err != nil {
		return err
	}
	return w.WriteRecords(kind, fields, records)
}

func runCMDBShow(ctx context.Context, cmd *cli.Command, kind record.Kind) error {
	name := cmd.Args().First()
	if name == "" {
		return invErrors.Newf(invErrors.ErrCodeUsage, "usage: invctl %s show NAME", kind)
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	fields, err := resolveFields(e, kind, cmd)
	if err != nil {
		return err
	}
	w, err := newRenderWriter(cmd, e)
	if err != nil {
		return err
	}

	rec, err := e.inv.Get(ctx, kind, name)
	if err != nil {
		return err
	}
	return w.WriteRecord(kind, fields, rec)
}
