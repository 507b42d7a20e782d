package main

import (
	"os"

	"github.com/lixenwraith/orf-cloud/core"
)

func main() {
	defer func() { core.HandleCrash(recover()) }()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
