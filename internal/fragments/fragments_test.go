// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package fragments

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, h template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(h)))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestHeader(t *testing.T) {
	const want = `<header><a href="http://alum.wpi.edu/~colinb/"><img src="personal_logo2.png" alt="logo"></a></header>`
	testutil.AssertEqual(t, string(Header()), want)

	doc := parse(t, Header())
	a := doc.Find("header > a")
	testutil.AssertEqual(t, a.Length(), 1)
	testutil.AssertEqual(t, a.AttrOr("href", ""), "http://alum.wpi.edu/~colinb/")
	img := a.Find("img")
	testutil.AssertEqual(t, img.Length(), 1)
	testutil.AssertEqual(t, img.AttrOr("src", ""), "personal_logo2.png")
	testutil.AssertEqual(t, img.AttrOr("alt", ""), "logo")
}

func TestNav(t *testing.T) {
	want := []struct {
		label, href string
		indented    bool
	}{
		{"14CUX", "14cux.html", false},
		{"Hardware interface", "14cux_interface.html", true},
		{"Serial protocol", "14cux_protocol.html", true},
		{"Software", "14cux_software.html", true},
		{"14CUX rescue kit", "14cux_rescue.html", false},
		{"MEMS 1.6 diagnostics", "mems_interface.html", false},
		{"Inside the Sykes-Pickavant ACR", "sykes_acr.html", false},
		{"Tire inflators", "tire_inflators.html", false},
		{"Cosmos", "cosmos.html", false},
		{"Connections", "connections.html", false},
		{"Contact info", "contact.html", false},
	}

	items := parse(t, Nav()).Find("nav > ul > li")
	if items.Length() != len(want) {
		t.Fatalf("want %d items, got %d", len(want), items.Length())
	}
	items.Each(func(i int, li *goquery.Selection) {
		a := li.Find("a")
		testutil.AssertEqual(t, a.Text(), want[i].label)
		testutil.AssertEqual(t, a.AttrOr("href", ""), want[i].href)
		testutil.AssertEqual(t, a.HasClass("indented"), want[i].indented)
	})

	if !strings.HasPrefix(string(Nav()), `<nav><ul><li><a href="14cux.html">14CUX</a></li><li><a class="indented" href="14cux_interface.html">`) {
		t.Fatalf("unexpected nav markup: %s", Nav())
	}
	if !strings.HasSuffix(string(Nav()), `<li><a href="contact.html">Contact info</a></li></ul></nav>`) {
		t.Fatalf("unexpected nav markup: %s", Nav())
	}
}

func TestFooter(t *testing.T) {
	const want = `<footer><div class="sfc-member"><p>` +
		`<a href="http://validator.w3.org/check?uri=referer"><img src="http://www.w3.org/Icons/valid-xhtml10" alt="Valid XHTML 1.0 Strict" height="31" width="88" /></a>` +
		`<a href="http://jigsaw.w3.org/css-validator/check/referer"><img style="border:0;width:88px;height:31px" src="http://jigsaw.w3.org/css-validator/images/vcss-blue" alt="Valid CSS!" /></a>` +
		`</p></div></footer>`
	testutil.AssertEqual(t, string(Footer()), want)

	links := parse(t, Footer()).Find("footer div.sfc-member p > a")
	testutil.AssertEqual(t, links.Length(), 2)
	testutil.AssertEqual(t, links.Eq(0).Find("img").AttrOr("alt", ""), "Valid XHTML 1.0 Strict")
	testutil.AssertEqual(t, links.Eq(1).Find("img").AttrOr("alt", ""), "Valid CSS!")
}

func TestIdempotent(t *testing.T) {
	for name, f := range map[string]func() template.HTML{
		"header": Header,
		"nav":    Nav,
		"footer": Footer,
	} {
		t.Run(name, func(t *testing.T) {
			first := f()
			for range 3 {
				testutil.AssertEqual(t, f(), first)
			}
		})
	}
}

func TestLinksCopy(t *testing.T) {
	l := Links()
	l[0].Label = "changed"
	testutil.AssertEqual(t, Links()[0].Label, "14CUX")

	b := Badges()
	b[0].Alt = "changed"
	testutil.AssertEqual(t, Badges()[0].Alt, "Valid XHTML 1.0 Strict")

	testutil.AssertEqual(t, Logo().Src, "personal_logo2.png")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf); err != nil {
		t.Fatal(err)
	}
	want := string(Header()) + string(Nav()) + string(Footer())
	testutil.AssertEqual(t, buf.String(), want)
}
