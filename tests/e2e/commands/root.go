// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os/exec"
)

// Run executes the CLI against baseDir without prompts and returns the
// combined output.
/* #nosec G204 */
func Run(baseDir string, args ...string) (string, error) {
	args = append(args, "--base-dir", baseDir, "--non-interactive")
	cmd := exec.Command(CLIBinary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
