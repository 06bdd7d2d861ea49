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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileSystem is the filesystem the CLI reads its configuration and scripts
// from. Tests swap the os filesystem for afero.NewMemMapFs().
type FileSystem = afero.Fs

const configFileName = ".avlctl.yaml"

type ReplConfig struct {
	Prompt  string `yaml:"prompt"`
	KeyType string `yaml:"key_type"`
}

type FilterConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    uint `yaml:"size"`   // number of bits in the filter
	Hashes  uint `yaml:"hashes"` // number of hash functions
}

type HelpConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Repl   ReplConfig   `yaml:"repl"`
	Filter FilterConfig `yaml:"filter"`
	Help   HelpConfig   `yaml:"help"`
}

var defaultConfig = Config{
	Repl: ReplConfig{
		Prompt:  "avl> ",
		KeyType: keyTypeInt,
	},
	Filter: FilterConfig{
		Enabled: false,
		Size:    1 << 16,
		Hashes:  4,
	},
	Help: HelpConfig{
		CacheMinutes: 30,
	},
}

// LoadConfig reads the YAML configuration at path. A missing file yields the
// defaults. A file that cannot be read or decoded also yields the defaults,
// together with the error so the caller can report it.
func LoadConfig(fs FileSystem, path string) (*Config, error) {
	config := defaultConfig

	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return &config, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return &config, errors.Wrapf(err, "read config %s", path)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "decode config %s", path)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills settings left empty in the file.
func (c *Config) applyDefaults() {
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = defaultConfig.Repl.Prompt
	}
	if c.Repl.KeyType == "" {
		c.Repl.KeyType = defaultConfig.Repl.KeyType
	}
	if c.Filter.Size == 0 {
		c.Filter.Size = defaultConfig.Filter.Size
	}
	if c.Filter.Hashes == 0 {
		c.Filter.Hashes = defaultConfig.Filter.Hashes
	}
	if c.Help.CacheMinutes <= 0 {
		c.Help.CacheMinutes = defaultConfig.Help.CacheMinutes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(fs FileSystem, configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "marshal default config")
	}

	if err = afero.WriteFile(fs, configPath, data, 0644); err != nil {
		return errors.Wrap(err, "write config file")
	}

	return nil
}

func displaySettings(w io.Writer, fs FileSystem, configPath string) error {
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return errors.Wrap(err, "stat config file")
	}

	if !exists {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "%sCreated default configuration at: %s%s\n\n", Green, configPath, Reset)
	}

	config, err := LoadConfig(fs, configPath)
	if err != nil {
		fmt.Fprintf(w, "%sFailed to load configuration: %v. Showing defaults.%s\n\n", Warning, err, Reset)
	}

	fmt.Fprintf(w, "avlctl configuration\n")
	fmt.Fprintf(w, "====================\n\n")
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	fmt.Fprintf(w, "%srepl%s\n", Green, Reset)
	fmt.Fprintf(w, "  prompt: %q\n", config.Repl.Prompt)
	fmt.Fprintf(w, "  key_type: %s\n\n", config.Repl.KeyType)

	fmt.Fprintf(w, "%sfilter%s\n", Green, Reset)
	fmt.Fprintf(w, "  enabled: %t\n", config.Filter.Enabled)
	fmt.Fprintf(w, "  size: %d\n", config.Filter.Size)
	fmt.Fprintf(w, "  hashes: %d\n\n", config.Filter.Hashes)

	fmt.Fprintf(w, "%shelp%s\n", Green, Reset)
	fmt.Fprintf(w, "  cache_minutes: %d\n", config.Help.CacheMinutes)

	return nil
}
