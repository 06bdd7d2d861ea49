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
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := cache.New(time.Minute, time.Minute)
	name := "insert"
	helpText := "This is help text for insert"

	// Initially, GetHelpPage should return an empty string for a missing command.
	if got := GetHelpPage(c, name); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", name, got)
	}

	CacheHelpPage(c, name, helpText, time.Minute)

	if got := GetHelpPage(c, name); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", name, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	name := "find"
	helpText := "This help text should expire soon."

	CacheHelpPage(c, name, helpText, 100*time.Millisecond)

	if got := GetHelpPage(c, name); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", name, got, helpText)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, name); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", name, got)
	}
}

func TestHelpBookRendersOnce(t *testing.T) {
	calls := 0
	hb := newHelpBook(time.Minute, func(md string) (string, error) {
		calls++
		return "rendered:" + md, nil
	})

	for i := 0; i < 3; i++ {
		page, err := hb.page("remove")
		if err != nil {
			t.Fatalf("page returned error: %v", err)
		}
		if !strings.HasPrefix(page, "rendered:") || !strings.Contains(page, "remove <key>") {
			t.Errorf("unexpected page %q", page)
		}
	}

	if calls != 1 {
		t.Errorf("render called %d times; want 1", calls)
	}
}

func TestHelpBookUnknownCommand(t *testing.T) {
	hb := newHelpBook(time.Minute, nil)
	if _, err := hb.page("frobnicate"); err == nil {
		t.Error("Expected error for unknown command, got nil")
	}
}

func TestHelpBookOverview(t *testing.T) {
	hb := newHelpBook(time.Minute, nil)
	page, err := hb.page("")
	if err != nil {
		t.Fatalf("page returned error: %v", err)
	}
	for _, name := range commandNames() {
		if !strings.Contains(page, name) {
			t.Errorf("overview does not mention %q", name)
		}
	}
}
