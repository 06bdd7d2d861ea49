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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI sequences used for console output. They stay empty until
// InitializeColors runs, so output written in tests is plain text.
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string
)

var detectedMode TerminalMode

// detectTerminalMode guesses whether the terminal has a light or a dark background
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and sets the ANSI colour variables.
// It is skipped when NO_COLOR is set.
func InitializeColors() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return
	}
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors(detectedMode)
}

// GetANSIColors returns darker colours for light terminals and brighter ones for dark terminals.
func GetANSIColors(mode TerminalMode) (success, info, warning, error, reset string) {
	if mode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// accentColor is the lipgloss colour for focused borders and titles.
func accentColor() lipgloss.Color {
	if detectedMode == TerminalModeLight {
		return lipgloss.Color("25")
	}
	return lipgloss.Color("39")
}

// mutedColor is used for blurred borders and help text.
func mutedColor() lipgloss.Color {
	if detectedMode == TerminalModeLight {
		return lipgloss.Color("245")
	}
	return lipgloss.Color("240")
}
