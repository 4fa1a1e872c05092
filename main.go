package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/HackerShabi/hotelwebsite/internal/app"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to an optional env file")
	pflag.Parse()

	l := logger.New(log.Default())

	var exitCode int

	if err := app.Run(l, *envFile); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
