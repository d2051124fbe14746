/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/stackwise/invctl/pkg/condition"
	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
	"github.com/stackwise/invctl/pkg/waiter"
)

// waitableKinds are the record kinds waitfor may poll. Only CMDB queries are
// supported; asking to wait on anything else is immediately fatal rather
// than retried.
var waitableKinds = []record.Kind{
	record.KindSystem,
	record.KindService,
	record.KindEnvironment,
}

func waitforCmd() *cli.Command {
	return &cli.Command{
		Name:                  "waitfor",
		EnableShellCompletion: true,
		Usage:                 "Poll a CMDB query until a count condition holds",
		ArgsUsage:             "KIND COUNT [CONDITION...]",
		Description: `Repeatedly issue a CMDB query until the result size satisfies the count
expression, or the timeout elapses.

COUNT is one of:
  N     exactly N records
  >N    strictly more than N records
  0     no records (also satisfied when the query returns nothing at all)

# Examples

Wait until at least three prod systems report up:
  invctl waitfor system ">2" environment=prod status=up

Wait for a system to disappear, checking every 10s for up to 5m:
  invctl waitfor system 0 name=web07 --interval 10 --timeout 300

Exit codes: 0 when the condition is met, 4 on timeout.`,
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Value:   5,
				Usage:   "seconds to sleep between attempts",
			},
			&cli.IntFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Value:   300,
				Usage:   "overall deadline in seconds",
			},
		}, commonFlags...),
		Action: runWaitfor,
	}
}

func runWaitfor(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return invErrors.New(invErrors.ErrCodeUsage,
			"usage: invctl waitfor KIND COUNT [CONDITION...]")
	}

	kind, err := waitableKind(args[0])
	if err != nil {
		return err
	}

	cond, err := condition.Parse(args[1])
	if err != nil {
		return err
	}

	interval := cmd.Int("interval")
	timeout := cmd.Int("timeout")
	if interval < 0 || timeout <= 0 {
		return invErrors.New(invErrors.ErrCodeUsage,
			"interval must be >= 0 and timeout > 0")
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	conditions := args[2:]
	query := func(ctx context.Context) ([]record.Record, error) {
		return e.inv.Query(ctx, kind, conditions)
	}

	return waiter.Wait(ctx, cond, query,
		time.Duration(interval)*time.Second,
		time.Duration(timeout)*time.Second)
}

// waitableKind validates the polled kind. Unsupported targets are a fatal
// unknown-command error, not a retryable one.
func waitableKind(name string) (record.Kind, error) {
	kind := record.Kind(name)
	for _, k := range waitableKinds {
		if kind == k {
			return kind, nil
		}
	}

	names := make([]string, len(waitableKinds))
	for i, k := range waitableKinds {
		names[i] = k.String()
	}
	return "", unknownSubcommand(invErrors.ErrCodeUnknownCommand, "waitfor", name, names)
}
