package main

import (
	"github.com/Ceeox/proxer-go/cmd"
	"github.com/Ceeox/proxer-go/config"
	"github.com/Ceeox/proxer-go/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
