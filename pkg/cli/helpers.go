/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/stackwise/invctl/pkg/client"
	"github.com/stackwise/invctl/pkg/compute"
	"github.com/stackwise/invctl/pkg/config"
	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/inventory"
	"github.com/stackwise/invctl/pkg/logging"
	"github.com/stackwise/invctl/pkg/monitoring"
	"github.com/stackwise/invctl/pkg/record"
	"github.com/stackwise/invctl/pkg/render"
	"github.com/stackwise/invctl/pkg/version"
)

const toolName = "invctl"

// Shared flag definitions; commands list the ones they use.
var (
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Value:   render.FormatText.String(),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(render.SupportedFormats(), ", ")),
	}

	fieldsFlag = &cli.StringFlag{
		Name:    "fields",
		Aliases: []string{"f"},
		Usage:   "comma-separated field list; field=width overrides the column width (e.g. name=32,status)",
	}

	noHeaderFlag = &cli.BoolFlag{
		Name:  "no-header",
		Usage: "suppress the header row",
	}

	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "suppress the trailing object count",
	}

	labelFlag = &cli.BoolFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Value:   true,
		Usage:   "prefix values with field names in single-record text output",
	}

	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "config file path (default: ~/.config/invctl/config.yaml)",
		Sources: cli.EnvVars("INVCTL_CONFIG"),
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logging",
	}
)

// commonFlags are accepted by every command that talks to a collaborator.
var commonFlags = []cli.Flag{configFlag, debugFlag}

// outputFlags are accepted by every command that renders record sequences.
var outputFlags = []cli.Flag{formatFlag, fieldsFlag, noHeaderFlag, quietFlag}

// env bundles the per-invocation state: resolved config, display profiles
// and the three collaborator clients.
type env struct {
	cfg      *config.Config
	profiles *record.Profiles
	inv      *inventory.Client
	comp     *compute.Client
	mon      *monitoring.Client
}

// newEnv loads configuration, installs the logger and wires the collaborator
// clients for one command invocation.
func newEnv(cmd *cli.Command) (*env, error) {
	logging.SetDefaultStructuredLogger(toolName, version.Version(), cmd.Bool("debug"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	profiles, err := record.DefaultProfiles()
	if err != nil {
		return nil, err
	}

	clientOpts := []client.Option{
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit, cfg.RateLimitBurst),
	}

	return &env{
		cfg:      cfg,
		profiles: profiles,
		inv:      inventory.New(client.New(cfg.CMDBURL, clientOpts...)),
		comp:     compute.New(client.New(cfg.ComputeURL, clientOpts...)),
		mon:      monitoring.New(client.New(cfg.MonitoringURL, clientOpts...)),
	}, nil
}

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (render.Format, error) {
	outFormat := render.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", invErrors.Newf(invErrors.ErrCodeUsage,
			"unknown output format %q, valid formats are: %s",
			outFormat, strings.Join(render.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// renderOptions maps output flags to renderer options.
func renderOptions(cmd *cli.Command) render.Options {
	return render.Options{
		Header:   !cmd.Bool("no-header"),
		Labels:   cmd.Bool("label"),
		Feedback: !cmd.Bool("quiet"),
	}
}

// newRenderWriter builds the record writer for this invocation, printing to
// stdout.
func newRenderWriter(cmd *cli.Command, e *env) (*render.Writer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return render.NewWriter(format, e.profiles, os.Stdout, renderOptions(cmd)), nil
}

// resolveFields turns the --fields flag into the ordered projection for the
// kind, falling back to the kind's defaults when the spec parses down to
// nothing.
func resolveFields(e *env, kind record.Kind, cmd *cli.Command) ([]string, error) {
	spec := record.SplitFieldSpec(cmd.String("fields"))
	fields, err := e.profiles.Resolve(kind, spec)
	if errors.Is(err, record.ErrNoFields) {
		return e.profiles.Fields(kind), nil
	}
	return fields, err
}

// suggestName returns the candidate closest to input within edit distance 2,
// or the empty string.
func suggestName(input string, candidates []string) string {
	const maxDistance = 2

	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// commandNames collects the names and aliases of the given commands.
func commandNames(cmds []*cli.Command) []string {
	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
		names = append(names, c.Aliases...)
	}
	return names
}

// unknownSubcommand builds the coded error for an unrecognized subcommand,
// with a "did you mean" hint when something is close.
func unknownSubcommand(code invErrors.Code, parent, name string, candidates []string) error {
	if s := suggestName(name, candidates); s != "" {
		return invErrors.Newf(code, "unknown %s command %q, did you mean %q?", parent, name, s)
	}
	return invErrors.Newf(code, "unknown %s command %q", parent, name)
}
