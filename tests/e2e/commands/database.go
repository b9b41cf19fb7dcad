// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

func DatabaseStats(baseDir string) (string, error) {
	return Run(baseDir, DatabaseCmd, "stats")
}

func MigrateDatabase(baseDir string, target string) (string, error) {
	return Run(baseDir, DatabaseCmd, "migrate", "--target", target, "--use")
}
