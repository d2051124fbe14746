/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/stackwise/invctl/pkg/hierarchy"
	"github.com/stackwise/invctl/pkg/record"
)

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tree",
		EnableShellCompletion: true,
		Usage:                 "Display the environment hierarchy",
		Description: `Reconstruct and print the environment tree from the flat CMDB environment
records. Each environment carries an optional parent reference; environments
without one (or pointing at themselves) are roots.

With --systems, systems are attached beneath their environment.

# Examples

  invctl tree
  invctl tree --systems`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "systems",
				Usage: "attach systems beneath their environments",
			},
		}, commonFlags...),
		Action: runTree,
	}
}

func runTree(ctx context.Context, cmd *cli.Command) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	withSystems := cmd.Bool("systems")

	// The two collaborator queries are independent, so fetch them together.
	var environments, systems []record.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		environments, err = e.inv.Query(gctx, record.KindEnvironment, nil)
		return err
	})
	if withSystems {
		g.Go(func() error {
			var err error
			systems, err = e.inv.Query(gctx, record.KindSystem, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	items := make([]hierarchy.Item, 0, len(environments)+len(systems))
	for _, env := range environments {
		items = append(items, hierarchy.Item{
			Name:   env.String("name"),
			Parent: env.String("parent"),
		})
	}
	for _, sys := range systems {
		items = append(items, hierarchy.Item{
			Name:   sys.String("name"),
			Parent: sys.String("environment"),
		})
	}

	tree, err := hierarchy.Build(items)
	if err != nil {
		return err
	}
	return tree.Render(os.Stdout)
}
