//go:build windows
// +build windows

package benchmark

// SetMaxResources is a no-op on Windows, which has no open file limit
// equivalent to adjust.
func SetMaxResources() error {
	return nil
}
