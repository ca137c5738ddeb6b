// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-logo produces the logo image shown in the page header.

# Usage

	$ go tool resize-logo [flags] <image>

The image is scaled to fit the header and written to the static directory
under the name the header links to. ImageMagick (the magick command) must be
installed.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
