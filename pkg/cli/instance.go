/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stackwise/invctl/pkg/compute"
	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
)

func instanceCmd() *cli.Command {
	c := &cli.Command{
		Name:                  "instance",
		Aliases:               []string{"inst"},
		EnableShellCompletion: true,
		Usage:                 "Manage cloud instances",
		Description: `Query and control cloud instances through the instance control API.

# Examples

List all instances:
  invctl instance list

List filtered instances:
  invctl instance list state=running region=eu-1

Show one instance:
  invctl instance show i-0a1b2c

Lifecycle operations:
  invctl instance create --name web07 --flavor m1.small --region eu-1
  invctl instance start i-0a1b2c
  invctl instance stop i-0a1b2c
  invctl instance terminate i-0a1b2c`,
		Commands: []*cli.Command{
			instanceListCmd(),
			instanceShowCmd(),
			instanceCreateCmd(),
			instanceActionCmd("start", "Power an instance on"),
			instanceActionCmd("stop", "Power an instance off"),
			instanceTerminateCmd(),
		},
	}

	// An unrecognized instance subcommand has its own exit code, distinct
	// from an unknown top-level command.
	c.Action = func(_ context.Context, cmd *cli.Command) error {
		if name := cmd.Args().First(); name != "" {
			return unknownSubcommand(invErrors.ErrCodeUnknownInstanceCommand,
				"instance", name, commandNames(c.Commands))
		}
		return cli.ShowSubcommandHelp(cmd)
	}

	return c
}

func instanceListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List instances matching the given conditions",
		Flags:   append(append([]cli.Flag{}, outputFlags...), commonFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			fields, err := resolveFields(e, record.KindInstance, cmd)
			if err != nil {
				return err
			}
			w, err := newRenderWriter(cmd, e)
			if err != nil {
				return err
			}

			instances, err := e.comp.List(ctx, cmd.Args().Slice())
			if err != nil {
				return err
			}
			return w.WriteRecords(record.KindInstance, fields, instances)
		},
	}
}

func instanceShowCmd() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"info"},
		Usage:   "Show one instance in full",
		Flags:   append(append([]cli.Flag{labelFlag}, outputFlags...), commonFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return invErrors.New(invErrors.ErrCodeUsage, "usage: invctl instance show ID")
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			fields, err := resolveFields(e, record.KindInstance, cmd)
			if err != nil {
				return err
			}
			w, err := newRenderWriter(cmd, e)
			if err != nil {
				return err
			}

			inst, err := e.comp.Get(ctx, id)
			if err != nil {
				return err
			}
			return w.WriteRecord(record.KindInstance, fields, inst)
		},
	}
}

func instanceCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Provision a new instance",
		Flags: append(append([]cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Required: true,
				Usage:    "instance name",
			},
			&cli.StringFlag{
				Name:  "flavor",
				Usage: "instance flavor (e.g. m1.small)",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "target region",
			},
			&cli.StringFlag{
				Name:  "image",
				Usage: "base image",
			},
			labelFlag,
		}, outputFlags...), commonFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			fields, err := resolveFields(e, record.KindInstance, cmd)
			if err != nil {
				return err
			}
			w, err := newRenderWriter(cmd, e)
			if err != nil {
				return err
			}

			created, err := e.comp.Create(ctx, compute.Spec{
				Name:   cmd.String("name"),
				Flavor: cmd.String("flavor"),
				Region: cmd.String("region"),
				Image:  cmd.String("image"),
			})
			if err != nil {
				return err
			}
			return w.WriteRecord(record.KindInstance, fields, created)
		},
	}
}

func instanceActionCmd(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: commonFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return invErrors.Newf(invErrors.ErrCodeUsage, "usage: invctl instance %s ID", name)
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			var opErr error
			switch name {
			case "start":
				opErr = e.comp.Start(ctx, id)
			case "stop":
				opErr = e.comp.Stop(ctx, id)
			}
			if opErr != nil {
				return opErr
			}

			fmt.Printf("instance %s: %s requested\n", id, name)
			return nil
		},
	}
}

func instanceTerminateCmd() *cli.Command {
	return &cli.Command{
		Name:    "terminate",
		Aliases: []string{"rm"},
		Usage:   "Destroy an instance",
		Flags:   commonFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return invErrors.New(invErrors.ErrCodeUsage, "usage: invctl instance terminate ID")
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			if err := e.comp.Terminate(ctx, id); err != nil {
				return err
			}
			fmt.Printf("instance %s: terminate requested\n", id)
			return nil
		},
	}
}
