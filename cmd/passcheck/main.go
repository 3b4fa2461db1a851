package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/password"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errPasswordRejected = errors.New("password rejected")

var (
	email      string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "passcheck",
	Short: "Evaluate the strength of a password",
	Long: `Reads a password and prints its strength evaluation.

The password is read from the terminal without echo, or from the first
line of stdin when stdin is not a terminal.

Examples:
  passcheck --email pilot@example.com
  echo 'Tr0ub4dor&3xyz' | passcheck --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&email, "email", "", "email address the password must not contain")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPasswordRejected) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return check(cmd.OutOrStdout(), pw, email, jsonOutput)
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// check writes the evaluation of pw to out and returns errPasswordRejected
// when the password is not valid.
func check(out io.Writer, pw string, email string, asJson bool) error {
	result := password.Evaluate(pw, email)

	if asJson {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		err := encoder.Encode(struct {
			password.Result
			Label string `json:"label"`
			Color string `json:"color"`
		}{
			Result: result,
			Label:  result.Label(),
			Color:  result.Color(),
		})
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		printResult(out, result)
	}

	if !result.IsValid {
		return errPasswordRejected
	}
	return nil
}

func printResult(out io.Writer, result password.Result) {
	_, _ = fmt.Fprintf(out, "Strength: %s (%d/%d)\n", result.Label(), result.Score, password.MaxScore)
	if result.IsValid {
		_, _ = fmt.Fprintln(out, "Valid:    yes")
	} else {
		_, _ = fmt.Fprintln(out, "Valid:    no")
	}

	if len(result.Errors) > 0 {
		_, _ = fmt.Fprintln(out, "Errors:")
		for _, msg := range result.Errors {
			_, _ = fmt.Fprintf(out, "  - %s\n", msg)
		}
	}

	if len(result.Suggestions) > 0 {
		_, _ = fmt.Fprintln(out, "Suggestions:")
		for _, msg := range result.Suggestions {
			_, _ = fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
}
