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
	"strconv"

	"github.com/pkg/errors"
)

var (
	errEmptyCommand   = errors.New("empty command, please enter a command")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
	errInvalidKey     = errors.New("invalid key")
	errKeyType        = errors.New("unsupported key type")

	// errQuit ends a session; it is not reported to the user.
	errQuit = errors.New("quit")
)

const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// parseIntKey accepts the decimal form of a signed 32-bit integer.
func parseIntKey(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(errInvalidKey, "%q is not a 32-bit integer", s)
	}
	return int32(v), nil
}

func parseStringKey(s string) (string, error) {
	if s == "" {
		return "", errors.Wrap(errInvalidKey, "key must not be empty")
	}
	return s, nil
}
