// Package logging hands out component-scoped loggers that share one level.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu       sync.Mutex
	level              = log.InfoLevel
	output   io.Writer = os.Stderr
	children           = map[string]*log.Logger{}
)

// SetLevel parses a level name (debug, info, warn, error) and applies it to every logger.
func SetLevel(name string) error {
	parsed, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = parsed
	for _, l := range children {
		l.SetLevel(parsed)
	}
	return nil
}

// SetOutput redirects every logger, mainly so tests can stay quiet.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	for _, l := range children {
		l.SetOutput(w)
	}
}

// For returns the logger tagged with the given component name.
func For(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := children[component]; ok {
		return l
	}
	l := log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		Prefix:          "ember",
		Level:           level,
	}).With("component", component)
	children[component] = l
	return l
}
