// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package fragments renders the markup shared by every page of the site: the
// header with the logo, the navigation menu and the footer with validator
// badges.
//
// Fragments are fixed. Each call returns the same bytes, so layout templates
// can call them as many times as they like.
package fragments

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

// Link is a navigation menu entry.
type Link struct {
	Label    string
	Href     string
	Indented bool // rendered as a sub-item of the previous top-level entry
}

// Image is a linked image, like the logo or a validator badge.
type Image struct {
	Href string // link target
	Src  string
	Alt  string
}

var logo = Image{
	Href: "http://alum.wpi.edu/~colinb/",
	Src:  "personal_logo2.png",
	Alt:  "logo",
}

var links = []Link{
	{Label: "14CUX", Href: "14cux.html"},
	{Label: "Hardware interface", Href: "14cux_interface.html", Indented: true},
	{Label: "Serial protocol", Href: "14cux_protocol.html", Indented: true},
	{Label: "Software", Href: "14cux_software.html", Indented: true},
	{Label: "14CUX rescue kit", Href: "14cux_rescue.html"},
	{Label: "MEMS 1.6 diagnostics", Href: "mems_interface.html"},
	{Label: "Inside the Sykes-Pickavant ACR", Href: "sykes_acr.html"},
	{Label: "Tire inflators", Href: "tire_inflators.html"},
	{Label: "Cosmos", Href: "cosmos.html"},
	{Label: "Connections", Href: "connections.html"},
	{Label: "Contact info", Href: "contact.html"},
}

var badges = []Image{
	{
		Href: "http://validator.w3.org/check?uri=referer",
		Src:  "http://www.w3.org/Icons/valid-xhtml10",
		Alt:  "Valid XHTML 1.0 Strict",
	},
	{
		Href: "http://jigsaw.w3.org/css-validator/check/referer",
		Src:  "http://jigsaw.w3.org/css-validator/images/vcss-blue",
		Alt:  "Valid CSS!",
	},
}

//go:embed partials/*.html
var partialsFS embed.FS

var (
	tpl = template.Must(template.ParseFS(partialsFS, "partials/*.html"))

	// Fragments never change, so render them once.
	header = render("header", logo)
	nav    = render("nav", links)
	footer = render("footer", badges)
)

func render(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}

// Header returns the page header: the logo linking to the home page.
func Header() template.HTML { return header }

// Nav returns the navigation menu listing every page of the site.
func Nav() template.HTML { return nav }

// Footer returns the page footer with the markup and CSS validator badges.
func Footer() template.HTML { return footer }

// Links returns the navigation menu entries in display order. The returned
// slice is a copy.
func Links() []Link {
	return append([]Link(nil), links...)
}

// Logo returns the image used in the header.
func Logo() Image { return logo }

// Badges returns the footer validator badges in display order. The returned
// slice is a copy.
func Badges() []Image {
	return append([]Image(nil), badges...)
}

// Write writes the header, navigation menu and footer to w, in that order.
func Write(w io.Writer) error {
	for _, f := range []func() template.HTML{Header, Nav, Footer} {
		if _, err := io.WriteString(w, string(f())); err != nil {
			return err
		}
	}
	return nil
}
