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
	"log"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cliOptions carries the global flags.
type cliOptions struct {
	configPath string
	keyType    string
}

func (o *cliOptions) resolveConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	path, err := getConfigPath()
	if err != nil {
		return configFileName
	}
	return path
}

// loadSettings loads the configuration and applies flag overrides. A broken
// config file is reported and the defaults are used instead.
func loadSettings(fs FileSystem, opts *cliOptions) *Config {
	config, err := LoadConfig(fs, opts.resolveConfigPath())
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if opts.keyType != "" {
		config.Repl.KeyType = opts.keyType
	}
	return config
}

func helpExpiration(cfg *Config) time.Duration {
	return time.Duration(cfg.Help.CacheMinutes) * time.Minute
}

func startREPL(fs FileSystem, opts *cliOptions, in io.Reader, out io.Writer) error {
	config := loadSettings(fs, opts)

	r, err := newRunner(config, newHelpBook(helpExpiration(config), nil), out)
	if err != nil {
		return err
	}
	return runREPL(r, in, out, config.Repl.Prompt)
}

func startScript(fs FileSystem, opts *cliOptions, path string, out io.Writer, showProgress bool) error {
	config := loadSettings(fs, opts)

	r, err := newRunner(config, newHelpBook(helpExpiration(config), nil), io.Discard)
	if err != nil {
		return err
	}

	stats, err := runScript(r, fs, path, out, showProgress)
	if err != nil {
		return err
	}

	r.setOutput(out)
	if err := r.execute("display"); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d commands executed, %d failed\n", stats.Executed, stats.Failed)
	return nil
}

func main() {
	opts := &cliOptions{}
	fs := afero.NewOsFs()

	InitializeColors()

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startREPL(fs, opts, os.Stdin, os.Stdout)
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec <script>",
		Short: "Run console commands from a file and print the resulting entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showProgress, _ := cmd.Flags().GetBool("progress")
			return startScript(fs, opts, args[0], os.Stdout, showProgress)
		},
	}
	cmdExec.Flags().Bool("progress", false, "show a progress bar while the script runs")

	var cmdTui = &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadSettings(fs, opts)
			r, err := newRunner(config, newGlamourHelpBook(config), io.Discard)
			if err != nil {
				return err
			}
			return runBubbleTeaApp(r)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avlctl usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default one if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(os.Stdout, fs, opts.resolveConfigPath())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlctl",
		Version:      version,
		Short:        "Ordered key-value console backed by an AVL tree",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the console when no subcommand is provided
			return startREPL(fs, opts, os.Stdin, os.Stdout)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.keyType, "key-type", "", "key type: int or string")

	rootCmd.AddCommand(cmdRepl, cmdExec, cmdTui, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
