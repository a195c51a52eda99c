// main.go

package main

import (
	"github.com/healthsec-tools/cylera-cli/cmd"
	"github.com/healthsec-tools/cylera-cli/pkg/logger"
)

func main() {
	logger.Initialize()
	cmd.Execute()
}
