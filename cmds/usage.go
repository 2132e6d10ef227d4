package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
)

func (p *Executor) PrintUsage() {
	printCommands(p.output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, indent int) {
	// aliases share the command value; print each command once
	var names []string
	for name, command := range commands {
		if command == nil {
			continue
		}
		if command.name != "" && command.name != name {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	prefix := strings.Repeat("  ", indent)
	for _, name := range names {
		command := commands[name]
		line := prefix + name + command.params()
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printCommands(w, lo.OmitByValues(command.Subs, []*Command{nil}), indent+1)
		}
	}
}
