package internal

import (
	"log"
	"os"
)

// InitLogging routes log output to stderr so it never mixes with the
// rendered connections on stdout.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
