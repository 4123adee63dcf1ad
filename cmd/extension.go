package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables read by wf, and passed on to extensions.
const (
	EnvLedgerFile = "WF_LEDGER_FILE"
	EnvLogLevel   = "WF_LOG_LEVEL"
	EnvListenAddr = "WF_LISTEN_ADDR"
)

// RunExtension attempts to find and execute an external wf-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "wf-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log := logger()
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvLogLevel+"="+*logLevel,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
