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
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
	helpPageWidth    = 80
)

// renderFunc turns a markdown help page into terminal output.
type renderFunc func(md string) (string, error)

func renderTermMarkdown(md string) (string, error) {
	return string(markdown.Render(md, helpPageWidth, 3)), nil
}

// helpBook renders command help pages on demand and keeps the rendered text
// cached, since rendering markdown is much slower than a tree lookup.
type helpBook struct {
	cache      *cache.Cache
	expiration time.Duration
	render     renderFunc
}

func newHelpBook(expiration time.Duration, render renderFunc) *helpBook {
	if render == nil {
		render = renderTermMarkdown
	}
	return &helpBook{
		cache:      cache.New(expiration, helpCacheCleanup),
		expiration: expiration,
		render:     render,
	}
}

// page returns the rendered help for name ("" for the command overview).
func (hb *helpBook) page(name string) (string, error) {
	if page := GetHelpPage(hb.cache, name); page != "" {
		return page, nil
	}

	md, err := commandHelpMarkdown(name)
	if err != nil {
		return "", err
	}

	page, err := hb.render(md)
	if err != nil {
		// fall back to the raw markdown, it is still readable
		page = md
	}
	CacheHelpPage(hb.cache, name, page, hb.expiration)

	return page, nil
}

func CacheHelpPage(c *cache.Cache, name string, helpTxt string, expiration time.Duration) {
	c.Set(name, helpTxt, expiration)
}

func GetHelpPage(c *cache.Cache, name string) string {
	val, ok := c.Get(name)
	if !ok {
		return ""
	}
	return val.(string)
}
