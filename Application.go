package main

import (
	"Zrzynka/core"
	"Zrzynka/logger"
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Log.Init("./"); err != nil {
		return err
	}

	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = "local"
	}
	settings, err := core.ReadSettings("./", env)
	if err != nil {
		return err
	}

	return start(settings)
}
