// Package main runs the remuco bridge between XMMS2 and remote-control clients.
package main

import (
	"github.com/remuco-cli/remuco/cmd"
	"github.com/remuco-cli/remuco/config"
	"github.com/remuco-cli/remuco/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
