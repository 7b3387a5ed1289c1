/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// getShellCmd creates the shell command.
func getShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands in one interactive session",
		Long: `Reads commands line by line and runs them against one
loaded inventory. Commands are the same as on the command line without
the 'nursery' prefix, for example:

  plant add
  plant update 3 quantity 0
  supplier list --format csv
  alerts

Alerts raised by changes stay in the alert pane until they are
resolved. Use 'exit', 'quit' or end of input to leave the shell.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	n, err := openNursery(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(cmd.InOrStdin())
	if input == nil {
		input = bufio.NewReader(cmd.InOrStdin())
	}

	if interactive {
		fmt.Fprintln(out, "Type 'help' for commands, 'exit' to quit.")
	}
	printAlerts(out, n.Alerts())

	for {
		if interactive {
			fmt.Fprint(out, "nursery> ")
		}
		line, err := input.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			if interactive {
				fmt.Fprintln(out)
			}
			return nil
		}

		words, wErr := splitWords(line)
		if wErr != nil {
			reportError(cmd.ErrOrStderr(), wErr)
			continue
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "exit" || words[0] == "quit" {
			return nil
		}

		lineCmd := getLineCmd()
		lineCmd.SetIn(cmd.InOrStdin())
		lineCmd.SetOut(out)
		lineCmd.SetErr(cmd.ErrOrStderr())
		lineCmd.SetArgs(words)
		reportError(cmd.ErrOrStderr(), lineCmd.Execute())
	}
}

// getLineCmd returns a root for one line of the shell. It shares the
// session and configuration of the shell.
func getLineCmd() *cobra.Command {
	lineCmd := &cobra.Command{
		Use:           "nursery>",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	addSessionCmds(lineCmd)
	lineCmd.CompletionOptions.DisableDefaultCmd = true
	return lineCmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// splitWords breaks a command line into words. Single and double quotes
// group words, a backslash escapes the next character outside of single
// quotes.
func splitWords(line string) ([]string, error) {
	var res []string
	var word strings.Builder
	var quote rune
	var inWord, escaped bool

	for _, r := range line {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				res = append(res, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("missing closing quote %q", quote)
	}
	if escaped {
		return nil, errors.New("line ends with a backslash")
	}
	if inWord {
		res = append(res, word.String())
	}
	return res, nil
}
