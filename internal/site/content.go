// Package site holds the portfolio content and the navigation and scroll
// chrome shared by every page: active nav links, header state, anchor
// offsets and reveal-on-scroll observers.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yml
var defaultSite []byte

// Link is one navigation entry.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Section is a block on the home page. Sections with Reveal set fade in
// when scrolled into view.
type Section struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Reveal bool   `yaml:"reveal"`
}

// CaseStudy is a block on the work page.
type CaseStudy struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Role  string `yaml:"role"`
	Body  string `yaml:"body"`
}

// Site is the whole portfolio content.
type Site struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Nav     []Link `yaml:"nav"`
	Home    struct {
		Sections []Section `yaml:"sections"`
	} `yaml:"home"`
	Work struct {
		CaseStudies []CaseStudy `yaml:"case_studies"`
	} `yaml:"work"`
}

// Default returns the built-in content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads content from path, or the built-in content when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site content: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing site content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	var errs []error
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	for i, l := range s.Nav {
		if l.Label == "" || l.Href == "" {
			errs = append(errs, fmt.Errorf("nav[%d]: label and href are required", i))
		}
	}
	seen := make(map[string]bool)
	for i, sec := range s.Home.Sections {
		if sec.ID == "" {
			errs = append(errs, fmt.Errorf("home.sections[%d]: id is required", i))
			continue
		}
		if seen[sec.ID] {
			errs = append(errs, fmt.Errorf("home.sections[%d]: duplicate id %q", i, sec.ID))
		}
		seen[sec.ID] = true
	}
	for i, cs := range s.Work.CaseStudies {
		if cs.ID == "" {
			errs = append(errs, fmt.Errorf("work.case_studies[%d]: id is required", i))
		}
	}
	return errors.Join(errs...)
}

// Hrefs returns the nav hrefs in order.
func (s *Site) Hrefs() []string {
	out := make([]string, len(s.Nav))
	for i, l := range s.Nav {
		out[i] = l.Href
	}
	return out
}
