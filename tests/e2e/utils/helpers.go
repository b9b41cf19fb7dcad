// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "strings"

// ContainsAddress reports whether out mentions addr, ignoring the checksum
// casing used when printing.
func ContainsAddress(out string, addr string) bool {
	return strings.Contains(strings.ToLower(out), strings.ToLower(addr))
}
