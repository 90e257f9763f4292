package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"VanityGen/internal/cli"
	"VanityGen/pkg/appcfg"
	"VanityGen/pkg/logx"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(2)
	}

	r := cli.NewRunner(nil)
	r.AppPath = filepath.Join(cwd, "configs", "app.yaml")
	r.OnApp = func(appConf *appcfg.Config) error {
		if err := logx.Init(logx.Config{
			Level:                appConf.LogLevel,
			FilePath:             appConf.LogFile,
			HideSecretsInConsole: appConf.HideSecretsInConsole,
		}); err != nil {
			return fmt.Errorf("log init: %w", err)
		}
		logx.S().Infow("vanitygen started",
			"cwd", cwd,
			"lang", appConf.Language,
			"log_level", appConf.LogLevel,
			"hide_secrets_in_console", appConf.HideSecretsInConsole,
		)
		return nil
	}

	err = r.Command().Execute()
	logx.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
