// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// command describes one console command and the arguments it accepts.
type command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	MinArgs int
	MaxArgs int // -1 means unlimited
}

var commands = []*command{
	{
		Name:    "insert",
		Usage:   "insert <key> <value...>",
		Summary: "Insert an entry, or overwrite the value of an existing key",
		MinArgs: 2,
		MaxArgs: -1,
	},
	{
		Name:    "remove",
		Aliases: []string{"delete", "del"},
		Usage:   "remove <key>",
		Summary: "Remove the entry with the given key",
		MinArgs: 1,
		MaxArgs: 1,
	},
	{
		Name:    "find",
		Aliases: []string{"get"},
		Usage:   "find <key>",
		Summary: "Print the value stored under the key",
		MinArgs: 1,
		MaxArgs: 1,
	},
	{
		Name:    "display",
		Aliases: []string{"list"},
		Usage:   "display",
		Summary: "Print all entries in ascending key order",
	},
	{
		Name:    "stats",
		Usage:   "stats",
		Summary: "Print the number of entries and the tree height",
	},
	{
		Name:    "help",
		Usage:   "help [command]",
		Summary: "Show the available commands or the help of one command",
		MaxArgs: 1,
	},
	{
		Name:    "exit",
		Aliases: []string{"quit"},
		Usage:   "exit",
		Summary: "Leave the session",
	},
}

func lookupCommand(name string) (*command, bool) {
	name = strings.ToLower(name)
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd, true
			}
		}
	}
	return nil, false
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	return names
}

func (c *command) checkArgs(args []string) error {
	if len(args) < c.MinArgs || (c.MaxArgs >= 0 && len(args) > c.MaxArgs) {
		return errors.Wrapf(errUsage, "usage: %s", c.Usage)
	}
	return nil
}

// invocation is one parsed console line.
type invocation struct {
	Cmd  *command
	Args []string
}

// parseLine splits a console line into words, honouring shell quoting, and
// resolves the command.
func parseLine(line string) (*invocation, error) {
	parts := splitCommand(line)
	if len(parts) == 0 {
		return nil, errEmptyCommand
	}

	cmd, ok := lookupCommand(parts[0])
	if !ok {
		return nil, errors.Wrapf(errUnknownCommand, "%q, use one of: %s",
			parts[0], strings.Join(commandNames(), ", "))
	}

	args := parts[1:]
	if err := cmd.checkArgs(args); err != nil {
		return nil, err
	}

	return &invocation{Cmd: cmd, Args: args}, nil
}

// splitCommand honours shell quoting when the whole line parses as plain
// words. A line with an unbalanced quote, or one the parser stops short on
// because of an operator such as | ; & < >, is split on whitespace instead
// so no part of a value is lost.
func splitCommand(line string) []string {
	parser := shellwords.NewParser()
	args, err := parser.Parse(line)
	if err != nil || parser.Position != -1 {
		return strings.Fields(line)
	}
	return args
}

// commandHelpMarkdown returns the markdown help page of a single command,
// or of all commands when name is empty.
func commandHelpMarkdown(name string) (string, error) {
	var b strings.Builder

	if name == "" {
		b.WriteString("# Commands\n\n")
		for _, cmd := range commands {
			fmt.Fprintf(&b, "* `%s` - %s\n", cmd.Usage, cmd.Summary)
		}
		b.WriteString("\nKeys are parsed as the configured key type. Quote values to keep repeated spaces.\n")
		return b.String(), nil
	}

	cmd, ok := lookupCommand(name)
	if !ok {
		return "", errors.Wrapf(errUnknownCommand, "%q", name)
	}

	fmt.Fprintf(&b, "# %s\n\n", cmd.Name)
	fmt.Fprintf(&b, "Usage: `%s`\n\n%s.\n", cmd.Usage, cmd.Summary)
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&b, "\nAliases: %s\n", strings.Join(cmd.Aliases, ", "))
	}
	return b.String(), nil
}
