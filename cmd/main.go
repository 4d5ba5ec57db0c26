package main

import (
	"context"
	"os"

	"github.com/GBA-BI/drs-client/cmd/drs"
)

func main() {
	command := drs.NewDRSCommand(context.Background())
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
