package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/simplechem/internal/formula"
	"github.com/DjordjeVuckovic/simplechem/internal/inline"
	"github.com/DjordjeVuckovic/simplechem/internal/markdown"
	"gopkg.in/yaml.v3"
)

var tagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Raw text elements are serialized without escaping and void elements
// cannot hold children, so neither can be the formula container.
var rejectedTags = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "textarea": true,
	"title": true, "xmp": true,
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Render holds the host options of the formula transform. Class is a pointer
// so that an explicit empty class (no attribute) differs from an unset one.
type Render struct {
	Tag     string  `yaml:"tag"`
	Class   *string `yaml:"class"`
	Trigger string  `yaml:"trigger"`
}

func DefaultRender() *Render {
	class := formula.DefaultClass
	return &Render{Tag: formula.DefaultTag, Class: &class}
}

// ParseRender decodes a YAML document on top of the defaults.
func ParseRender(r io.Reader) (*Render, error) {
	cfg := DefaultRender()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse render config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadRenderFromFile(path string) (*Render, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open render config: %w", err)
	}
	defer f.Close()
	return ParseRender(f)
}

// LoadRender reads the YAML file named by CONFIG_PATH, if any, and applies
// the SIMPLECHEM_TAG, SIMPLECHEM_CLASS and SIMPLECHEM_TRIGGER overrides.
func LoadRender() (*Render, error) {
	cfg := DefaultRender()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := LoadRenderFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		slog.Info("Loaded render config", "path", path)
	}

	if v, ok := os.LookupEnv("SIMPLECHEM_TAG"); ok && v != "" {
		cfg.Tag = v
	}
	if v, ok := os.LookupEnv("SIMPLECHEM_CLASS"); ok {
		cfg.Class = &v
	}
	if v, ok := os.LookupEnv("SIMPLECHEM_TRIGGER"); ok {
		cfg.Trigger = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Render) Validate() error {
	if c.Tag == "" {
		c.Tag = formula.DefaultTag
	}
	if !tagPattern.MatchString(c.Tag) {
		return fmt.Errorf("invalid tag %q", c.Tag)
	}
	if rejectedTags[strings.ToLower(c.Tag)] {
		return fmt.Errorf("tag %q cannot contain formula text", c.Tag)
	}
	if c.Class != nil && strings.ContainsAny(*c.Class, `"<>`) {
		return fmt.Errorf("invalid class %q", *c.Class)
	}
	if strings.ContainsAny(c.Trigger, "{} \t\r\n") {
		return fmt.Errorf("invalid trigger %q: must not contain braces or whitespace", c.Trigger)
	}
	return nil
}

// ClassName returns the class attribute, formula.DefaultClass when unset.
func (c *Render) ClassName() string {
	if c.Class == nil {
		return formula.DefaultClass
	}
	return *c.Class
}

func (c *Render) FormulaOptions() []formula.Option {
	return []formula.Option{formula.WithTag(c.Tag), formula.WithClass(c.ClassName())}
}

func (c *Render) Scanner() *inline.Scanner {
	return inline.NewScanner(c.Trigger)
}

func (c *Render) Transformer() *inline.Transformer {
	return inline.NewTransformer(c.Scanner(), c.FormulaOptions()...)
}

func (c *Render) Markdown(opts ...markdown.Option) *markdown.Extension {
	return markdown.NewExtension(c.Scanner(), c.Transformer(), opts...)
}
