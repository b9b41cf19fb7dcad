// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

func CreateSnapshot(baseDir string, name string) (string, error) {
	return Run(baseDir, SnapshotCmd, "--name", name)
}

func ExportSnapshot(baseDir string, dir string) (string, error) {
	return Run(baseDir, SnapshotCmd, "export", dir)
}

func ImportSnapshot(baseDir string, dir string) (string, error) {
	return Run(baseDir, SnapshotCmd, "import", dir)
}

func ListSnapshots(baseDir string) (string, error) {
	return Run(baseDir, SnapshotCmd, "list")
}

func RestoreSnapshot(baseDir string, name string) (string, error) {
	return Run(baseDir, SnapshotCmd, "restore", name)
}

func DeleteSnapshot(baseDir string, name string, force bool) (string, error) {
	args := []string{SnapshotCmd, "delete", name}
	if force {
		args = append(args, "--force")
	}
	return Run(baseDir, args...)
}
