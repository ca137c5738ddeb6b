// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"os"
	"testing"
)

func TestWithTempDir(t *testing.T) {
	errBuild := errors.New("build failed")

	cases := map[string]error{
		"success": nil,
		"failure": errBuild,
	}
	for name, wantErr := range cases {
		t.Run(name, func(t *testing.T) {
			var dir string
			err := withTempDir(func(d string) error {
				dir = d
				if _, err := os.Stat(d); err != nil {
					t.Fatalf("temporary directory doesn't exist: %v", err)
				}
				return wantErr
			})
			if !errors.Is(err, wantErr) {
				t.Fatalf("want error %v, got %v", wantErr, err)
			}
			if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("temporary directory %s was left behind: %v", dir, err)
			}
		})
	}
}
