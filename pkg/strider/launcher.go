package strider

import (
	"os/exec"
	"runtime"
)

// Opener hands a file path over to an external application.
type Opener func(path string) error

var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// OpenInExternalApp opens path with the platform's default application
// without waiting for it to exit.
func OpenInExternalApp(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return startCommand("open", path)
	case "windows":
		return startCommand("cmd", "/c", "start", "", path)
	default:
		return startCommand("xdg-open", path)
	}
}
