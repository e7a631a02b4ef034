package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bill-import/cmd/commit"
	"fjacquet/bill-import/cmd/parse"
	"fjacquet/bill-import/cmd/root"
	cmdsources "fjacquet/bill-import/cmd/sources"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently before any logging happens.
	loadEnvSilently()

	// Configure the global log level so every package-level logger created
	// afterwards inherits it.
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(commit.Cmd)
	root.Cmd.AddCommand(cmdsources.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
