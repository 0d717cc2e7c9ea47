package utils

import (
	"log"
	"os"
)

// InitLogger builds the process-wide logger used at startup and by the
// request logging middleware.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[studenthub] ", log.LstdFlags|log.LUTC)
}
