// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"

	"go.astrophena.name/cuxsite/internal/devtools"
)

func main() {
	log.SetFlags(0)
	devtools.EnsureRoot()

	if err := check(os.Getenv("CI") == "true"); err != nil {
		log.Fatal(err)
	}
}

func check(isCI bool) error {
	var w bytes.Buffer

	if err := run(&w, "gofmt", "-d", "."); err != nil {
		return err
	}
	if diff := w.String(); diff != "" {
		return fmt.Errorf("run gofmt on these files:\n\t%v", diff)
	}

	if err := run(&w, "go", "tool", "staticcheck", "./..."); err != nil {
		return err
	}

	testArgs := []string{"test", "./..."}
	if isCI {
		testArgs = []string{"test", "-race", "./..."}
	}
	if err := run(&w, "go", testArgs...); err != nil {
		return err
	}

	if err := run(&w, "go", "mod", "tidy", "--diff"); err != nil {
		return err
	}

	// Production builds fail on broken links.
	if err := withTempDir(func(dir string) error {
		return run(&w, "go", "tool", "build", "-prod", dir)
	}); err != nil {
		return err
	}

	if err := run(&w, "go", "tool", "addcopyright"); err != nil {
		return err
	}
	if isCI {
		return run(&w, "git", "diff", "--exit-code")
	}
	return nil
}

// withTempDir calls f with a fresh temporary directory and removes it
// afterwards, whether f fails or not.
func withTempDir(f func(dir string) error) error {
	dir, err := os.MkdirTemp("", "cuxsite-pre-commit")
	if err != nil {
		return err
	}
	return errors.Join(f(dir), os.RemoveAll(dir))
}

func run(buf *bytes.Buffer, cmd string, args ...string) error {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
	return nil
}
