// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/cuxsite/internal/devtools"
	"go.astrophena.name/cuxsite/internal/fragments"
)

func main() { cli.Main(new(app)) }

type app struct {
	height int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.IntVar(&a.height, "height", 100, "Logo height in pixels.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	if _, err := exec.LookPath("magick"); err != nil {
		return errors.New("ImageMagick (magick command) not found")
	}

	env := cli.GetEnv(ctx)
	if len(env.Args) != 1 {
		return fmt.Errorf("%w: want input image file", cli.ErrInvalidArgs)
	}
	if a.height <= 0 {
		return fmt.Errorf("%w: height must be positive", cli.ErrInvalidArgs)
	}

	absInputFile, err := filepath.Abs(env.Args[0])
	if err != nil {
		return fmt.Errorf("failed to get absolute path for input file: %w", err)
	}
	if _, err := os.Stat(absInputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file %s not found", absInputFile)
	}

	outputFile := filepath.Join("static", filepath.FromSlash(fragments.Logo().Src))
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "magick",
		absInputFile,
		"-resize", "x"+strconv.Itoa(a.height),
		"-strip",
		outputFile,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to resize logo: %w", err)
	}
	return nil
}
