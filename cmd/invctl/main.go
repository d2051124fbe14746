/*
Copyright © 2025 Stackwise
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stackwise/invctl/pkg/cli"
	invErrors "github.com/stackwise/invctl/pkg/errors"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "invctl: %v\n", err)
		os.Exit(invErrors.ExitCode(err))
	}
}
