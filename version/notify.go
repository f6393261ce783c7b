package version

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/icon"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/log"
	"github.com/Ceeox/proxer-go/style"
	"github.com/Ceeox/proxer-go/util"
	"github.com/spf13/viper"
)

// Notify prints a hint when a newer release exists. Failures are only logged.
func Notify(ctx context.Context, client *http.Client) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx, client)
	erase()

	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(constant.Repository+"/releases/tag/v"+latest),
	)
}
