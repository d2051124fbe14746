/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/stackwise/invctl/pkg/record"
)

func alertsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "alerts",
		EnableShellCompletion: true,
		Usage:                 "List active alerts from the monitoring API",
		Description: `List active alerts, optionally filtered.

# Examples

  invctl alerts
  invctl alerts host=web01 severity=critical
  invctl alerts --format json`,
		Flags: append(append([]cli.Flag{}, outputFlags...), commonFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			fields, err := resolveFields(e, record.KindAlert, cmd)
			if err != nil {
				return err
			}
			w, err := newRenderWriter(cmd, e)
			if err != nil {
				return err
			}

			alerts, err := e.mon.Alerts(ctx, cmd.Args().Slice())
			if err != nil {
				return err
			}
			return w.WriteRecords(record.KindAlert, fields, alerts)
		},
	}
}

func checksCmd() *cli.Command {
	return &cli.Command{
		Name:                  "checks",
		EnableShellCompletion: true,
		Usage:                 "List check states from the monitoring API",
		Description: `List check states for one host, or every host when no --host is given.

# Examples

  invctl checks --host web01
  invctl checks --format csv`,
		Flags: append(append([]cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "restrict to one host",
			},
		}, outputFlags...), commonFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			fields, err := resolveFields(e, record.KindCheck, cmd)
			if err != nil {
				return err
			}
			w, err := newRenderWriter(cmd, e)
			if err != nil {
				return err
			}

			checks, err := e.mon.Checks(ctx, cmd.String("host"))
			if err != nil {
				return err
			}
			return w.WriteRecords(record.KindCheck, fields, checks)
		},
	}
}
