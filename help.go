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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

var version = "0.1.0"

func getHelpMessage() string {
	var cmds strings.Builder
	for _, cmd := range commands {
		fmt.Fprintf(&cmds, "* `%s` - %s\n", cmd.Usage, cmd.Summary)
	}

	message := fmt.Sprintf(`

 **avlctl %s**

An ordered key-value console backed by a self-balancing AVL tree.
Every insert and remove keeps the tree height logarithmic, so lookups stay fast no matter the insertion order.

Built with Go %s

# 1. Modes
* avlctl repl - interactive console (default)
* avlctl exec <script> - run a file of commands, one per line
* avlctl tui - terminal UI with a live view of the entries
* avlctl settings - show or create ~/%s

# 2. Console commands
%s
# 3. Keys
* Keys are 32-bit integers by default. Use --key-type string or repl.key_type in the config for text keys
* Inserting an existing key overwrites its value

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), configFileName, cmds.String())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
