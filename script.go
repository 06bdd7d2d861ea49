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
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// scriptStats summarises a script run.
type scriptStats struct {
	Executed int
	Failed   int
}

// scriptLine is one command of a script and its 1-based line number in the file.
type scriptLine struct {
	Number int
	Text   string
}

// scriptLines returns the commands of a script: one per line, blank lines
// and lines starting with '#' skipped.
func scriptLines(data string) []scriptLine {
	var lines []scriptLine
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, scriptLine{Number: i + 1, Text: line})
	}
	return lines
}

// runScript executes the command script at path. A failing line is reported
// with its line number and the script goes on; exit stops it early.
func runScript(r runner, fs FileSystem, path string, out io.Writer, showProgress bool) (scriptStats, error) {
	var stats scriptStats

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return stats, errors.Wrapf(err, "read script %s", path)
	}

	lines := scriptLines(string(data))

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Running script..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, line := range lines {
		err := r.execute(line.Text)
		if bar != nil {
			_ = bar.Add(1)
		}
		if errors.Is(err, errQuit) {
			break
		}

		stats.Executed++
		if err != nil {
			stats.Failed++
			fmt.Fprintf(out, "%sline %d (%s): %v%s\n", Error, line.Number, line.Text, err, Reset)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return stats, nil
}
