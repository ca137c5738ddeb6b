// © 2022 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/cuxsite/internal/devtools"
	"go.astrophena.name/cuxsite/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	prod          bool
	skipFeed      bool
	skipLinkCheck bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.prod, "prod", false, "Build in a production mode.")
	fs.BoolVar(&a.skipFeed, "skip-feed", false, "Don't build the Atom feed.")
	fs.BoolVar(&a.skipLinkCheck, "skip-link-check", false, "Don't check generated pages for broken links.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	env := cli.GetEnv(ctx)
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: want at most one directory", cli.ErrInvalidArgs)
	}
	dir := filepath.Join(".", "build")
	if len(env.Args) > 0 {
		dir = env.Args[0]
	}

	return site.Build(ctx, &site.Config{
		Src:           ".",
		Dst:           dir,
		Prod:          a.prod,
		SkipFeed:      a.skipFeed,
		SkipLinkCheck: a.skipLinkCheck,
	})
}
