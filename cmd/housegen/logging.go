package main

import (
	"os"

	"github.com/lixenwraith/housegen/core"
)

const (
	logDir      = "logs"
	logFileName = "housegen.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging writes debug output to logs/housegen.log; without debug no file
// is created and all logging is discarded
func setupLogging(debug bool) *os.File {
	return core.SetupLogging(debug, logDir, logFileName, maxLogSize)
}
