package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Product struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

type InternalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CategoryData is the per-category slice of the semantic core: known product
// slugs, SEO keywords, related-page links and ready-made FAQ entries.
// Internal links and FAQs accept both snake_case and camelCase keys because
// both spellings exist in exported core files.
type CategoryData struct {
	Products      []Product      `json:"products"`
	Keywords      []string       `json:"keywords"`
	InternalLinks []InternalLink `json:"internal_links"`
	FAQs          []FAQ          `json:"faq"`
}

func (d *CategoryData) UnmarshalJSON(data []byte) error {
	type raw struct {
		Products         []Product      `json:"products"`
		Keywords         []string       `json:"keywords"`
		InternalLinks    []InternalLink `json:"internal_links"`
		InternalLinksAlt []InternalLink `json:"internalLinks"`
		FAQ              []FAQ          `json:"faq"`
		FAQsAlt          []FAQ          `json:"faqs"`
	}

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	d.Products = r.Products
	d.Keywords = r.Keywords
	d.InternalLinks = r.InternalLinks
	if len(d.InternalLinks) == 0 {
		d.InternalLinks = r.InternalLinksAlt
	}
	d.FAQs = r.FAQ
	if len(d.FAQs) == 0 {
		d.FAQs = r.FAQsAlt
	}
	return nil
}

// SemanticCore is the category registry. It preserves the key order of the
// source document because classification iterates categories in insertion
// order.
type SemanticCore struct {
	categories map[CategoryTag]*CategoryData
	order      []CategoryTag
}

func NewSemanticCore() *SemanticCore {
	return &SemanticCore{categories: make(map[CategoryTag]*CategoryData)}
}

// Set registers or replaces a category, keeping first-insertion order.
func (c *SemanticCore) Set(tag CategoryTag, data *CategoryData) {
	if _, ok := c.categories[tag]; !ok {
		c.order = append(c.order, tag)
	}
	c.categories[tag] = data
}

// Category returns the data for tag, or nil if the core does not know it.
func (c *SemanticCore) Category(tag CategoryTag) *CategoryData {
	if c == nil {
		return nil
	}
	return c.categories[tag]
}

// Tags returns category tags in document order.
func (c *SemanticCore) Tags() []CategoryTag {
	if c == nil {
		return nil
	}
	return c.order
}

func (c *SemanticCore) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

func (c *SemanticCore) UnmarshalJSON(data []byte) error {
	c.categories = make(map[CategoryTag]*CategoryData)
	c.order = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("semantic core must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", keyTok)
		}

		var cd CategoryData
		if err := dec.Decode(&cd); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		c.Set(CategoryTag(key), &cd)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
