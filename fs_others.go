//go:build !linux
// +build !linux

package devsettings

import "os"

// writable checks the permission bits only.
func writable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().Perm()&0222 != 0
}
