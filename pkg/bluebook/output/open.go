package output

import (
	"os/exec"
	"runtime"
)

// Opener opens a written file for the user.
type Opener interface {
	Open(path string) error
}

// SystemOpener opens files with the operating system's default application.
type SystemOpener struct{}

// Open starts the platform opener without waiting for it to exit.
func (SystemOpener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// NopOpener ignores every request.
type NopOpener struct{}

// Open implements Opener.
func (NopOpener) Open(string) error { return nil }
