// Package cmd implements the CLI application to value, classify and manage
// account activities.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// groups lists the subcommands in the order they are presented.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"activities", []subcommands.Command{&valueCmd{}, &classifyCmd{}, &validateCmd{}}},
	{"ledger", []subcommands.Command{&importCmd{}, &listCmd{}, &fmtCmd{}}},
	{"server", []subcommands.Command{&serveCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", env(EnvLedgerFile, "activities.jsonl"), "Path to the ledger file containing activities (JSONL format)")
	logLevel   = flag.String("log-level", env(EnvLogLevel, "warn"), "Log level: debug, info, warn or error")
	listenAddr = env(EnvListenAddr, ":8080")
)

// dotenv loads the .env file of the working directory, if there is one.
var dotenv = sync.OnceFunc(func() { _ = godotenv.Load() })

// env returns the value of an environment variable, or fallback when it is
// unset or empty. Variables can also be declared in a .env file.
func env(key, fallback string) string {
	dotenv()
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DecodeLedger reads all activities of the app ledger file. A missing ledger
// is an empty ledger.
func DecodeLedger() ([]wealth.Activity, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	list, err := wealth.DecodeActivities(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger file %q: %w", *ledgerFile, err)
	}
	return list, nil
}

// EncodeLedger replaces the content of the app ledger file. The new content is
// written to a temporary file first, so that a failure leaves the ledger intact.
func EncodeLedger(list []wealth.Activity) error {
	tmp, err := os.CreateTemp(filepath.Dir(*ledgerFile), ".ledger-*.jsonl")
	if err != nil {
		return fmt.Errorf("error creating temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := wealth.EncodeActivities(tmp, list); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), *ledgerFile); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// AppendLedger appends activities at the end of the app ledger file, creating it if needed.
func AppendLedger(list []wealth.Activity) error {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", *ledgerFile, err)
	}
	if err := wealth.EncodeActivities(f, list); err != nil {
		f.Close()
		return fmt.Errorf("error writing to ledger file %q: %w", *ledgerFile, err)
	}
	return f.Close()
}
