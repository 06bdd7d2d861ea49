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
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestRunner(t *testing.T, keyType string, filter bool) (runner, *bytes.Buffer) {
	t.Helper()

	cfg := defaultConfig
	cfg.Repl.KeyType = keyType
	cfg.Filter.Enabled = filter

	out := &bytes.Buffer{}
	r, err := newRunner(&cfg, newHelpBook(time.Minute, nil), out)
	if err != nil {
		t.Fatalf("newRunner returned error: %v", err)
	}
	return r, out
}

func mustExecute(t *testing.T, r runner, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	if err := r.execute(line); err != nil {
		t.Fatalf("execute(%q) returned error: %v", line, err)
	}
	return out.String()
}

func TestSessionScenario(t *testing.T) {
	for _, filter := range []bool{false, true} {
		r, out := newTestRunner(t, keyTypeInt, filter)

		mustExecute(t, r, out, "insert 10 a")
		mustExecute(t, r, out, "insert 20 b")
		mustExecute(t, r, out, "insert 5 c")

		got := mustExecute(t, r, out, "display")
		want := "Entries in ascending key order:\n" +
			"  Key: 5, Value: c\n" +
			"  Key: 10, Value: a\n" +
			"  Key: 20, Value: b\n"
		if got != want {
			t.Errorf("filter=%v display = %q; want %q", filter, got, want)
		}

		if got := mustExecute(t, r, out, "find 10"); got != "Value for key 10: a\n" {
			t.Errorf("filter=%v find 10 = %q", filter, got)
		}

		if got := mustExecute(t, r, out, "remove 10"); !strings.Contains(got, "removed") {
			t.Errorf("filter=%v remove 10 = %q; want removed", filter, got)
		}
		if got := mustExecute(t, r, out, "remove 10"); !strings.Contains(got, "not found") {
			t.Errorf("filter=%v second remove 10 = %q; want not found", filter, got)
		}
		if got := mustExecute(t, r, out, "remove 999"); !strings.Contains(got, "not found") {
			t.Errorf("filter=%v remove 999 = %q; want not found", filter, got)
		}
		if got := mustExecute(t, r, out, "find 10"); !strings.Contains(got, "not found") {
			t.Errorf("filter=%v find 10 after remove = %q; want not found", filter, got)
		}

		if got := mustExecute(t, r, out, "stats"); got != "Entries: 2, height: 2\n" {
			t.Errorf("filter=%v stats = %q", filter, got)
		}
	}
}

func TestSessionInsertJoinsValue(t *testing.T) {
	r, out := newTestRunner(t, keyTypeInt, false)

	tests := []struct {
		line  string
		key   string
		value string
	}{
		{"insert 1 hello big world", "1", "hello big world"},
		{`insert 2 "spaced   out"`, "2", "spaced   out"},
		{"insert 3 a|b c", "3", "a|b c"},
		{"insert 4 x; y", "4", "x; y"},
		{"insert 5 don't stop", "5", "don't stop"},
		{"insert 6 a > b", "6", "a > b"},
		{"insert 7 salt & pepper", "7", "salt & pepper"},
		{"insert 8 <tag>", "8", "<tag>"},
	}

	for _, tc := range tests {
		mustExecute(t, r, out, tc.line)
		want := "Value for key " + tc.key + ": " + tc.value + "\n"
		if got := mustExecute(t, r, out, "find "+tc.key); got != want {
			t.Errorf("%q: find %s = %q; want %q", tc.line, tc.key, got, want)
		}
	}

	mustExecute(t, r, out, "insert 1 replaced")
	entries := r.entries()
	if len(entries) != len(tests) || entries[0].Value != "replaced" {
		t.Errorf("entries after overwrite = %v", entries)
	}
}

func TestSessionRejectsBadInput(t *testing.T) {
	r, out := newTestRunner(t, keyTypeInt, false)
	mustExecute(t, r, out, "insert 1 one")

	tests := []struct {
		line    string
		wantErr error
	}{
		{"insert x one", errInvalidKey},
		{"remove 1.5", errInvalidKey},
		{"find abc", errInvalidKey},
		{"insert 1", errUsage},
		{"jump 1", errUnknownCommand},
		{"", errEmptyCommand},
	}

	for _, tc := range tests {
		err := r.execute(tc.line)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("execute(%q) error = %v; want %v", tc.line, err, tc.wantErr)
		}
	}

	if entries := r.entries(); len(entries) != 1 || entries[0].Value != "one" {
		t.Errorf("bad input changed the tree: %v", entries)
	}
}

func TestSessionStringKeys(t *testing.T) {
	r, out := newTestRunner(t, keyTypeString, false)

	mustExecute(t, r, out, "insert pear 3")
	mustExecute(t, r, out, "insert apple 1")
	mustExecute(t, r, out, "insert mango 2")

	var keys []string
	for _, e := range r.entries() {
		keys = append(keys, e.Key)
	}
	if strings.Join(keys, ",") != "apple,mango,pear" {
		t.Errorf("keys = %v; want ascending order", keys)
	}

	if _, err := parseStringKey(""); !errors.Is(err, errInvalidKey) {
		t.Errorf("parseStringKey(\"\") error = %v; want errInvalidKey", err)
	}
}

func TestSessionLastFound(t *testing.T) {
	r, out := newTestRunner(t, keyTypeInt, false)

	if _, ok := r.lastFound(); ok {
		t.Error("lastFound reported a value before any find")
	}

	mustExecute(t, r, out, "insert 3 three")
	mustExecute(t, r, out, "find 3")
	mustExecute(t, r, out, "find 4")

	if v, ok := r.lastFound(); !ok || v != "three" {
		t.Errorf("lastFound = %q, %v; want three, true", v, ok)
	}
}

func TestSessionExitAndHelp(t *testing.T) {
	r, out := newTestRunner(t, keyTypeInt, false)

	if err := r.execute("EXIT"); !errors.Is(err, errQuit) {
		t.Errorf("exit error = %v; want errQuit", err)
	}

	if got := mustExecute(t, r, out, "help find"); !strings.Contains(got, "find <key>") {
		t.Errorf("help find = %q", got)
	}
	if err := r.execute("help teleport"); !errors.Is(err, errUnknownCommand) {
		t.Errorf("help teleport error = %v; want errUnknownCommand", err)
	}
}

func TestNewRunnerUnknownKeyType(t *testing.T) {
	cfg := defaultConfig
	cfg.Repl.KeyType = "float"

	if _, err := newRunner(&cfg, newHelpBook(time.Minute, nil), &bytes.Buffer{}); !errors.Is(err, errKeyType) {
		t.Errorf("newRunner error = %v; want errKeyType", err)
	}
}
