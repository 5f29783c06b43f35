// Package catalog holds the list of medical specializations offered by the
// sign-up form. A default list is embedded; deployments can replace it with
// their own YAML file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed specializations.yaml
var defaultCatalog []byte

// Specialization is one selectable option.
type Specialization struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is an ordered, duplicate-free list of specializations.
type Catalog struct {
	items []Specialization
}

type document struct {
	Specializations []Specialization `yaml:"specializations"`
}

// Default returns the embedded catalog. It panics if the embedded file is broken.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded specializations: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document of the form:
//
//	specializations:
//	  - value: cardiology
//	    label: Cardiology
//
// Values and labels are trimmed. A missing label is derived from the value:
// "sports-medicine" becomes "Sports Medicine".
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	if len(doc.Specializations) == 0 {
		return nil, ErrEmptyCatalog
	}

	items := make([]Specialization, 0, len(doc.Specializations))
	seen := make(map[string]struct{}, len(doc.Specializations))
	for i, s := range doc.Specializations {
		s.Value = strings.TrimSpace(s.Value)
		s.Label = strings.TrimSpace(s.Label)
		if s.Value == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyValue, i)
		}
		if _, dup := seen[s.Value]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValue, s.Value)
		}
		seen[s.Value] = struct{}{}
		if s.Label == "" {
			s.Label = labelFromValue(s.Value)
		}
		items = append(items, s)
	}
	return &Catalog{items: items}, nil
}

func labelFromValue(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Options returns the specializations in file order.
func (c *Catalog) Options() []Specialization {
	return slices.Clone(c.items)
}

// Values returns just the option values, for strict validation.
func (c *Catalog) Values() []string {
	out := make([]string, len(c.items))
	for i, s := range c.items {
		out[i] = s.Value
	}
	return out
}

// Label returns the display label of value.
func (c *Catalog) Label(value string) (string, bool) {
	i := slices.IndexFunc(c.items, func(s Specialization) bool { return s.Value == value })
	if i < 0 {
		return "", false
	}
	return c.items[i].Label, true
}

func (c *Catalog) Len() int {
	return len(c.items)
}
