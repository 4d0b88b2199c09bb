//go:build !windows
// +build !windows

package benchmark

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// SetMaxResources raises the open file limit to the hard maximum so long
// benchmark runs are not cut short by descriptor exhaustion from the
// spawned command processes.
func SetMaxResources() error {
	rLimit := unix.Rlimit{}

	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("unable to get rlimit: %w", err)
	}

	rLimit.Cur = rLimit.Max
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("unable to set open file limit: %w", err)
	}

	logrus.Debugf("Open file limit raised to %d", rLimit.Cur)
	return nil
}
