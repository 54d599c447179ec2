package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/fileio"
)

const shellHelp = `vsmod commands:
list
    - list all installed mods
list <name>
    - show all metadata of mods matching a name or mod id
(^D exits)`

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Inspect installed mods interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell() {
	scanner := loadMods()

	// ^C during a read should drop back to the prompt, not kill the shell
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	shellLoop(scanner, os.Stdin, os.Stdout)
}

func shellLoop(scanner *fileio.Scanner, in io.Reader, out io.Writer) {
	lines := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !lines.Scan() {
			break
		}
		shellDispatch(scanner, lines.Text(), out)
	}
	if err := lines.Err(); err != nil {
		fmt.Fprintf(out, "\nError reading input: %v\n", err)
	}

	fmt.Fprintln(out, "\nExiting vsmod...")
}

// shellDispatch runs a single shell command line: "list" prints every mod's
// summary, "list <query>" the full dump of every match, anything else the
// help text.
func shellDispatch(scanner *fileio.Scanner, line string, out io.Writer) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(tokens) == 0 {
		fmt.Fprintln(out, shellHelp)
		return
	}

	switch tokens[0] {
	case "list":
		if len(tokens) > 1 {
			query := strings.Join(tokens[1:], " ")
			for _, mod := range scanner.Get(query) {
				mod.WriteAll(out)
			}
		} else {
			for _, mod := range scanner.Mods() {
				fmt.Fprintln(out, mod.Summary())
			}
		}
	default:
		fmt.Fprintln(out, shellHelp)
	}
}
