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

	"github.com/willf/bloom"

	"github.com/cybrota/avlctl/avl"
)

// index is the ordered store behind a session: an AVL tree, optionally
// fronted by a bloom filter so lookups of keys that were never inserted
// skip the tree walk. Removals leave their bits set, which can only cause
// false positives, never a wrong answer.
type index[K cmp.Ordered] struct {
	tree   *avl.Tree[K, string]
	filter *bloom.BloomFilter
}

func newIndex[K cmp.Ordered](cfg FilterConfig) *index[K] {
	ix := &index[K]{tree: avl.New[K, string]()}
	if cfg.Enabled {
		ix.filter = bloom.New(cfg.Size, cfg.Hashes)
	}
	return ix
}

func filterKey[K cmp.Ordered](key K) string {
	return fmt.Sprint(key)
}

func (ix *index[K]) mayContain(key K) bool {
	if ix.filter == nil {
		return true
	}
	return ix.filter.TestString(filterKey(key))
}

func (ix *index[K]) insert(key K, value string) {
	ix.tree.Insert(key, value)
	if ix.filter != nil {
		ix.filter.AddString(filterKey(key))
	}
}

func (ix *index[K]) remove(key K) bool {
	if !ix.mayContain(key) {
		return false
	}
	return ix.tree.Remove(key)
}

func (ix *index[K]) find(key K) (string, bool) {
	if !ix.mayContain(key) {
		return "", false
	}
	return ix.tree.Find(key)
}
