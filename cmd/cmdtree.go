package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const banner = `
 __   __     ___ ___ ___ ___
 \ \ / /_ _| _ \ __/ __| _ \
  \ V / _' |  _/ _| (__|  _/
   |_|\__,_|_| |_| \___|_|
`

// CmdTree is a node of a command line: either a runnable command or a group
// of subcommands.
type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

func (c *CmdTree) Usage(args []string) {
	c.writeUsage(os.Stderr, args[0])
	os.Exit(2)
}

func (c *CmdTree) writeUsage(w io.Writer, name string) {
	fmt.Fprintln(w, banner[1:])
	fmt.Fprintf(w, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(w, "Usage: %s [command]\n", name)
	for _, sub := range c.Sub {
		if sub.Name == "" {
			fmt.Fprintln(w)
			continue
		}
		pad := 16 - len(sub.Name)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "  %s%s%s\n", sub.Name, strings.Repeat(" ", pad), sub.Help)
	}
	fmt.Fprintln(w)
}

// Find returns the command addressed by args, with the arguments it should
// run with. The first argument names the program.
func (c *CmdTree) Find(args []string) (*CmdTree, []string) {
	if c.Fun != nil || len(args) <= 1 {
		return c, args
	}
	for _, sub := range c.Sub {
		if sub.Name != "" && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			return sub.Find(append([]string{name}, args[2:]...))
		}
	}
	return c, args
}

func (c *CmdTree) Execute(args []string) {
	target, sargs := c.Find(args)
	if target.Fun == nil {
		target.Usage(sargs)
		return
	}
	target.Fun(sargs)
}
