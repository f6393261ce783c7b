// Package open launches proxer.me pages and stream links with the system handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Ceeox/proxer-go/key"
	"github.com/spf13/viper"
)

// ErrUnsupported is returned on platforms without a known URL handler.
var ErrUnsupported = fmt.Errorf("opening links is not supported on %s", runtime.GOOS)

// Start opens input with the application set in open.browser, or the
// system default, without waiting for it to exit.
func Start(input string) error {
	cmd, ok := Command(input, viper.GetString(key.OpenBrowser))
	if !ok {
		return ErrUnsupported
	}
	return cmd.Start()
}

// Command builds the command that opens input. An empty app selects the system handler.
func Command(input, app string) (*exec.Cmd, bool) {
	if app == "" {
		return systemCommand(input)
	}

	switch runtime.GOOS {
	case "windows":
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), true
	case "darwin":
		return exec.Command("open", "-a", app, input), true
	case "android":
		return exec.Command("termux-open", "--choose", input), true
	default:
		return exec.Command(app, input), true
	}
}

func systemCommand(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case "darwin":
		return exec.Command("open", input), true
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", input), true
	case "android":
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
