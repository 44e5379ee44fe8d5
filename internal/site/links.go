package site

import (
	"net/url"
	"strings"
)

// normalizePath trims a trailing slash; the root stays "/".
func normalizePath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// currentPage collapses empty path segments: "//work/" becomes "/work".
func currentPage(path string) string {
	var segs []string
	for _, s := range strings.Split(normalizePath(path), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

// ActiveLinks reports, per href, whether the nav link points at the current
// location. Anchor links ("/#contact") are active only on the home page with
// a matching hash; other links compare normalized paths. Empty hrefs are
// never active.
func ActiveLinks(path, hash string, hrefs []string) []bool {
	page := currentPage(path)
	out := make([]bool, len(hrefs))

	for i, href := range hrefs {
		if href == "" {
			continue
		}
		if _, anchor, ok := strings.Cut(href, "#"); ok {
			out[i] = page == "/" && hash == "#"+anchor
			continue
		}
		out[i] = page == linkPath(path, href)
	}
	return out
}

func linkPath(current, href string) string {
	base, err := url.Parse("http://localhost" + current)
	if err == nil {
		if ref, err := url.Parse(href); err == nil {
			return normalizePath(base.ResolveReference(ref).Path)
		}
	}
	p, _, _ := strings.Cut(href, "#")
	return normalizePath(p)
}

// HeaderScrolled reports whether the header switches to its scrolled state.
func HeaderScrolled(scrollY, threshold int) bool {
	return scrollY > threshold
}

// AnchorOffset returns the scroll offset that brings a target at targetTop
// (in document coordinates) just below a fixed header of headerOffset.
func AnchorOffset(targetTop, headerOffset int) int {
	return max(targetTop-headerOffset, 0)
}

// SplitHref separates a nav href into its path and anchor. The path of
// "#about" is empty.
func SplitHref(href string) (path, anchor string) {
	path, anchor, _ = strings.Cut(href, "#")
	return path, anchor
}
