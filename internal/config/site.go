package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteProfile []byte

// Site is the static company profile rendered by the page templates.
type Site struct {
	Company      Company     `yaml:"company"`
	Nav          []Link      `yaml:"nav"`
	Social       []Link      `yaml:"social"`
	Images       Images      `yaml:"images"`
	Stats        Stats       `yaml:"stats"`
	Story        []string    `yaml:"story"`
	Mission      string      `yaml:"mission"`
	Values       []Feature   `yaml:"values"`
	Team         []Feature   `yaml:"team"`
	Process      []Feature   `yaml:"process"`
	Advantages   []Advantage `yaml:"advantages"`
	Reasons      []Feature   `yaml:"reasons"`
	Highlight    Quote       `yaml:"highlight"`
	ProjectTypes []Option    `yaml:"project_types"`
}

type Company struct {
	Name        string   `yaml:"name"`
	Tagline     string   `yaml:"tagline"`
	Established int      `yaml:"established"`
	Blurb       string   `yaml:"blurb"`
	Phone       string   `yaml:"phone"`
	PhoneHref   string   `yaml:"phone_href"`
	Email       string   `yaml:"email"`
	Address     []string `yaml:"address"`
	Hours       []string `yaml:"hours"`
}

type Link struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Images struct {
	Home      string `yaml:"home"`
	About     string `yaml:"about"`
	Services  string `yaml:"services"`
	Projects  string `yaml:"projects"`
	Contact   string `yaml:"contact"`
	WhyChoose string `yaml:"why_choose"`
	Team      string `yaml:"team"`
	CTA       string `yaml:"cta"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Stats struct {
	Home      []Stat `yaml:"home"`
	About     []Stat `yaml:"about"`
	Projects  []Stat `yaml:"projects"`
	WhyChoose []Stat `yaml:"why_choose"`
}

type Feature struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Advantage struct {
	Title  string   `yaml:"title"`
	Body   string   `yaml:"body"`
	Points []string `yaml:"points"`
}

type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// LoadSite parses the profile at path, or the embedded default when path is
// empty.
func LoadSite(path string) (*Site, error) {
	data := defaultSiteProfile
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site profile: %w", err)
		}
	}

	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site profile: %w", err)
	}
	if site.Company.Name == "" {
		return nil, fmt.Errorf("site profile: company.name is required")
	}
	return &site, nil
}

// ProjectTypeLabel maps a contact form value back to its display label.
func (s *Site) ProjectTypeLabel(value string) string {
	for _, o := range s.ProjectTypes {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}
