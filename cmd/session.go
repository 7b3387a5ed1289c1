package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/root31/nursery/internal/ionursery"
	"github.com/root31/nursery/internal/ioprompt"
	"github.com/root31/nursery/internal/iostore"
	app "github.com/root31/nursery/pkg"
	"github.com/spf13/cobra"
)

var (
	// session is opened by the first command that needs data and is
	// shared by all commands of a shell.
	session app.Nursery

	// input is shared by prompts and the shell loop.
	input *bufio.Reader
)

// openNursery returns the current session, loading collections on first
// use. Load problems are printed as warnings, the session keeps what
// could be read.
func openNursery(cmd *cobra.Command) (app.Nursery, error) {
	if session != nil {
		return session, nil
	}

	store, err := iostore.New(cfg)
	if err != nil {
		return nil, err
	}

	n := ionursery.New(cfg, store)
	if err = n.Load(); err != nil {
		slog.Warn("Collections loaded with problems", "error", err)
		for _, e := range splitErrors(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", ioprompt.Message(e))
		}
	}
	session = n
	return n, nil
}

// closeSession flushes and releases the session if one is open.
func closeSession() error {
	input = nil
	if session == nil {
		return nil
	}
	err := session.Close()
	session = nil
	return err
}

func prompter(cmd *cobra.Command) *ioprompt.Prompter {
	if input == nil {
		input = bufio.NewReader(cmd.InOrStdin())
	}
	return ioprompt.New(input, cmd.OutOrStdout())
}

// finish prints the outcome of a mutating operation followed by the
// alert pane. The result is shown even with an error, because a failed
// save keeps the change in memory.
func finish(cmd *cobra.Command, n app.Nursery, res app.Result, err error) error {
	if res.Message != "" {
		printResult(cmd.OutOrStdout(), res)
		if err != nil {
			gn.Warn("Changes are kept in memory but were not saved")
		}
		printAlerts(cmd.OutOrStdout(), n.Alerts())
	}
	if err != nil {
		gn.PrintErrorMessage(err)
	}
	return err
}

// splitErrors unwraps errors combined by errors.Join.
func splitErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var res []error
		for _, e := range joined.Unwrap() {
			res = append(res, splitErrors(e)...)
		}
		return res
	}
	if err == nil {
		return nil
	}
	return []error{err}
}

// reportError prints errors that commands do not print themselves, like
// unknown commands, bad flags or arguments.
func reportError(w io.Writer, err error) {
	var gnErr *gn.Error
	if err == nil || errors.As(err, &gnErr) {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
