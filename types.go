package folio

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// BlogPost is a single article in the content store. Records are decoded
// once at start-up and never modified afterwards.
type BlogPost struct {
	ID          string   `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Content     string   `yaml:"content"` // Markdown
	PublishedAt Date     `yaml:"publishedAt"`
	ReadTime    int      `yaml:"readTime"` // minutes
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
}

// Link returns the canonical site-relative path of the post.
func (p BlogPost) Link() string {
	return "/blog/" + p.Slug + "/"
}

// DateLayout is the wire format of Date values.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time of day or zone.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MustDate is like ParseDate but panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// UnmarshalYAML accepts both quoted and bare YYYY-MM-DD scalars.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", n.Line)
	}
	parsed, err := ParseDate(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Profile is the static copy behind the home hero, about, portfolio and
// footer sections.
type Profile struct {
	Name      string       `yaml:"name"`
	Headline  string       `yaml:"headline"`
	Tagline   string       `yaml:"tagline"`
	Role      string       `yaml:"role"`
	Story     []string     `yaml:"story"`
	Connect   string       `yaml:"connect"`
	Skills    []Skill      `yaml:"skills"`
	Companies []Company    `yaml:"companies"`
	Socials   []SocialLink `yaml:"socials"`
}

// Skill is one card in the "What I Do" section.
type Skill struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"` // frontend, backend or infrastructure
}

// Company is one portfolio entry.
type Company struct {
	Name         string   `yaml:"name"`
	Logo         string   `yaml:"logo"` // initials shown in the avatar
	Role         string   `yaml:"role"`
	Duration     string   `yaml:"duration"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Achievements []string `yaml:"achievements"`
}

// SocialLink is rendered in the footer.
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// ContactForm holds the transient contact form fields.
type ContactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// ContactPage is the view model of the contact page.
type ContactPage struct {
	Form        ContactForm
	Errors      map[string]string // field name -> message
	Sent        bool
	AckDuration time.Duration
	CSRFToken   string
}
