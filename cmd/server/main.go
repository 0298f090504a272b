package main

import (
	"github.com/open-dossier/archive/backend/internal/server"
	"github.com/open-dossier/archive/backend/internal/util"
	"github.com/open-dossier/archive/backend/pkg/logger"
	"github.com/open-dossier/archive/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
