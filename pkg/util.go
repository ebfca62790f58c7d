package pkg

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// InitLog sends the standard logger to the file at dest, prefixing every
// line. An empty dest discards log output.
func InitLog(dest, prefix string) error {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)

	return nil
}

var seedNames sync.Once

// SessionName returns a random two word name such as "quiet-otter".
func SessionName() string {
	seedNames.Do(petname.NonDeterministicMode)

	return petname.Generate(2, "-")
}
