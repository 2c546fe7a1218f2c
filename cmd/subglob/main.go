// The subglob command prints input lines matching a glob pattern, like a
// grep that takes glob syntax instead of regular expressions.
//
// Example:
//
//	$ subglob '*.go: *_test' build.log
//	$ kubectl get pods | subglob 'backend-?????-*'
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/subglob/subglob"
)

var (
	invert     bool
	lineNumber bool
	countOnly  bool
)

var rootCmd = &cobra.Command{
	Use:   "subglob PATTERN [FILE...]",
	Short: "Print lines matching a glob pattern",
	Long: `Print lines in which PATTERN occurs, reading the given files or
standard input. PATTERN uses glob syntax: * matches any run of characters,
? matches exactly one, and \*, \? and \\ match the literal characters.
A match anywhere in the line counts; the pattern need not cover the line.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().BoolVarP(&invert, "invert-match", "v", false, "Print lines that do not match")
	rootCmd.Flags().BoolVarP(&lineNumber, "line-number", "n", false, "Prefix each line with its line number")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Print only a count of matching lines")
}

func run(cmd *cobra.Command, args []string) error {
	p, err := subglob.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse pattern: %w", err)
	}

	files := args[1:]
	if len(files) == 0 {
		return filter(cmd.OutOrStdout(), p, os.Stdin)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		if err := filter(cmd.OutOrStdout(), p, f); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		f.Close()
	}
	return nil
}

func filter(w io.Writer, p *subglob.Pattern, r io.Reader) error {
	count := 0
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if p.Match(sc.Text()) == invert {
			continue
		}
		count++
		if countOnly {
			continue
		}
		if lineNumber {
			fmt.Fprintf(w, "%d:%s\n", line, sc.Text())
		} else {
			fmt.Fprintln(w, sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if countOnly {
		fmt.Fprintln(w, count)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
