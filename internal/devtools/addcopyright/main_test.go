// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"path/filepath"
	"testing"
)

func TestIsExcluded(t *testing.T) {
	cases := map[string]struct {
		path string
		want bool
	}{
		"license":            {"LICENSE.md", true},
		"top-level document": {"README.md", true},
		"page":               {filepath.Join("pages", "contact.md"), false},
		"template":           {filepath.Join("templates", "layout.html"), false},
		"go file":            {filepath.Join("internal", "site", "site.go"), false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := isExcluded(tc.path); got != tc.want {
				t.Fatalf("isExcluded(%q): want %v, got %v", tc.path, tc.want, got)
			}
		})
	}
}
