package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const shellPrompt = "intrack> "

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `shell reads one command per line until "exit" or end of input.
Changes are saved after every command. Type "help" for the command list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("Welcome to intrack! Type \"help\" to see the commands.")
	}
	if err := s.loop(os.Stdin, os.Stdout, interactive); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return nil
}

// loop runs commands read from in until exit or end of input. Command
// errors are printed and the loop continues; storage errors end it.
func (s *session) loop(in io.Reader, out io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := s.parser.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		res, err := s.run(c, out)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := s.save(); err != nil {
			return err
		}
		if res.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("reading input failed", zap.Error(err))
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
