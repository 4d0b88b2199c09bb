//go:build !windows
// +build !windows

package benchmark

import "golang.org/x/sys/unix"

// freeDiskSpace reports the free bytes available to unprivileged writers on
// the filesystem holding path.
func freeDiskSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
