// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"io/fs"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// brokenLink is a link from a generated page to a file that doesn't exist in
// the generated site.
type brokenLink struct {
	Page   string // slash-separated path of the page, relative to the site root
	Target string // link as written in the page
}

var linkAttrs = []struct{ selector, attr string }{
	{"a[href]", "href"},
	{"img[src]", "src"},
	{"link[href]", "href"},
	{"script[src]", "src"},
}

// checkLinks finds links in HTML files under dir that point to files missing
// from dir. Links under base are checked as links to the site root; other links
// with a scheme or host are not checked. base may be nil.
func checkLinks(dir string, base *url.URL) ([]brokenLink, error) {
	root := os.DirFS(dir)

	var broken []brokenLink
	err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		f, err := root.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return err
		}

		seen := make(map[string]bool)
		for _, la := range linkAttrs {
			doc.Find(la.selector).Each(func(_ int, s *goquery.Selection) {
				target := strings.TrimSpace(s.AttrOr(la.attr, ""))
				if seen[target] {
					return
				}
				seen[target] = true
				if !resolves(root, base, p, target) {
					broken = append(broken, brokenLink{Page: p, Target: target})
				}
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(broken, func(i, j int) bool {
		if broken[i].Page != broken[j].Page {
			return broken[i].Page < broken[j].Page
		}
		return broken[i].Target < broken[j].Target
	})
	return broken, nil
}

// resolves reports whether target, linked from page, points to an existing
// file in root.
func resolves(root fs.FS, base *url.URL, page, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	if u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		rel, ok := underBase(base, u)
		if !ok {
			return true
		}
		u = &url.URL{Path: rel}
	}
	// Fragment-only links point into the page itself.
	if u.Path == "" {
		return true
	}

	var p string
	if strings.HasPrefix(u.Path, "/") {
		p = path.Clean(strings.TrimPrefix(u.Path, "/"))
	} else {
		p = path.Join(path.Dir(page), u.Path)
	}
	if p == "." || p == "" {
		p = "index.html"
	}
	if strings.HasPrefix(p, "../") || p == ".." {
		return false
	}

	for _, candidate := range []string{p, p + ".html", path.Join(p, "index.html")} {
		if fi, err := fs.Stat(root, candidate); err == nil && !fi.IsDir() {
			return true
		}
	}
	return false
}

// underBase returns the path of u relative to base, rooted at "/", if u points
// inside base.
func underBase(base, u *url.URL) (string, bool) {
	if base == nil || u.Opaque != "" || !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) {
		return "", false
	}
	prefix := strings.TrimSuffix(base.Path, "/")
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(u.Path, prefix)
	if rel == "" {
		return "/", true
	}
	if !strings.HasPrefix(rel, "/") {
		return "", false
	}
	return rel, true
}
