// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

func Doctor(baseDir string) (string, error) {
	return Run(baseDir, DoctorCmd)
}
