package main

import (
	"log/slog"
	"os"

	"github.com/Shan2017/friends/app/cli"
	"github.com/Shan2017/friends/app/service/journal"
	"github.com/Shan2017/friends/app/service/report"
	"github.com/samber/do"
)

func main() {
	di := do.New()

	do.Provide(di, journal.New)
	do.Provide(di, report.New)

	if err := cli.NewRootCommand(di).Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		_ = di.Shutdown()
		os.Exit(1)
	}

	_ = di.Shutdown()
}
