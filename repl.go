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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const replBanner = `Welcome to the avlctl console.
Available commands:
  insert <key> <value>  - insert or update an entry
  remove <key>          - remove an entry
  find <key>            - look up the value of a key
  display               - print all entries in ascending key order
  stats                 - print the entry count and tree height
  help [command]        - show help
  exit                  - leave the console
`

// runREPL reads one command per line from in until exit or end of input.
func runREPL(r runner, in io.Reader, out io.Writer, prompt string) error {
	fmt.Fprint(out, replBanner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n%s", prompt)
		if !scanner.Scan() {
			break
		}

		err := r.execute(strings.TrimSpace(scanner.Text()))
		if errors.Is(err, errQuit) {
			fmt.Fprintln(out, "Bye!")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
		}
	}

	fmt.Fprintln(out)
	return errors.Wrap(scanner.Err(), "read command")
}
