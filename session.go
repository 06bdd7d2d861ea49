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
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type entry struct {
	Key   string
	Value string
}

// runner executes console lines against a session, whatever its key type.
type runner interface {
	execute(line string) error
	entries() []entry
	lastFound() (string, bool)
	setOutput(w io.Writer)
}

// session binds an index to the parser for its key type and writes the
// result of every command to out.
type session[K cmp.Ordered] struct {
	index    *index[K]
	parseKey func(string) (K, error)
	help     *helpBook
	out      io.Writer

	lastValue string
	hasLast   bool
}

func newSession[K cmp.Ordered](cfg *Config, parseKey func(string) (K, error), help *helpBook, out io.Writer) *session[K] {
	return &session[K]{
		index:    newIndex[K](cfg.Filter),
		parseKey: parseKey,
		help:     help,
		out:      out,
	}
}

func newRunner(cfg *Config, help *helpBook, out io.Writer) (runner, error) {
	switch strings.ToLower(cfg.Repl.KeyType) {
	case keyTypeInt:
		return newSession(cfg, parseIntKey, help, out), nil
	case keyTypeString:
		return newSession(cfg, parseStringKey, help, out), nil
	}
	return nil, errors.Wrapf(errKeyType, "%q, use %s or %s", cfg.Repl.KeyType, keyTypeInt, keyTypeString)
}

func (s *session[K]) setOutput(w io.Writer) {
	s.out = w
}

// execute runs one console line. User mistakes come back as errors and
// leave the tree untouched; errQuit asks the caller to end the session.
func (s *session[K]) execute(line string) error {
	inv, err := parseLine(line)
	if err != nil {
		return err
	}

	switch inv.Cmd.Name {
	case "insert":
		return s.insert(inv.Args)
	case "remove":
		return s.remove(inv.Args[0])
	case "find":
		return s.find(inv.Args[0])
	case "display":
		s.display()
	case "stats":
		fmt.Fprintf(s.out, "Entries: %d, height: %d\n", s.index.tree.Len(), s.index.tree.Height())
	case "help":
		return s.showHelp(inv.Args)
	case "exit":
		return errQuit
	default:
		return errors.Wrapf(errUnknownCommand, "%q", inv.Cmd.Name)
	}

	return nil
}

func (s *session[K]) insert(args []string) error {
	key, err := s.parseKey(args[0])
	if err != nil {
		return err
	}

	s.index.insert(key, strings.Join(args[1:], " "))
	fmt.Fprintf(s.out, "%sEntry with key %v inserted/updated.%s\n", Green, key, Reset)
	return nil
}

func (s *session[K]) remove(arg string) error {
	key, err := s.parseKey(arg)
	if err != nil {
		return err
	}

	if s.index.remove(key) {
		fmt.Fprintf(s.out, "%sEntry with key %v removed.%s\n", Green, key, Reset)
	} else {
		fmt.Fprintf(s.out, "%sEntry with key %v not found.%s\n", Warning, key, Reset)
	}
	return nil
}

func (s *session[K]) find(arg string) error {
	key, err := s.parseKey(arg)
	if err != nil {
		return err
	}

	value, ok := s.index.find(key)
	if !ok {
		fmt.Fprintf(s.out, "%sEntry with key %v not found.%s\n", Warning, key, Reset)
		return nil
	}

	s.lastValue, s.hasLast = value, true
	fmt.Fprintf(s.out, "Value for key %v: %s\n", key, value)
	return nil
}

func (s *session[K]) display() {
	fmt.Fprintln(s.out, "Entries in ascending key order:")
	s.index.tree.InOrder(func(key K, value string) {
		fmt.Fprintf(s.out, "  Key: %v, Value: %s\n", key, value)
	})
}

func (s *session[K]) showHelp(args []string) error {
	var name string
	if len(args) == 1 {
		name = strings.ToLower(args[0])
	}

	page, err := s.help.page(name)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, page)
	return nil
}

func (s *session[K]) entries() []entry {
	out := make([]entry, 0, s.index.tree.Len())
	for key, value := range s.index.tree.All() {
		out = append(out, entry{Key: fmt.Sprint(key), Value: value})
	}
	return out
}

// lastFound returns the value printed by the most recent successful find.
func (s *session[K]) lastFound() (string, bool) {
	return s.lastValue, s.hasLast
}
