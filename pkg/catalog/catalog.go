package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog holds localized message templates keyed by language and message
// key. Immutable after Parse; safe for concurrent use.
type Catalog struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

// Parse builds a catalog from a YAML document of lang -> key -> message.
// The fallback language must be present in the document; lookups for keys
// missing in a matched language fall back to it.
func Parse(data []byte, fallback string) (*Catalog, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, errors.Join(ErrUnknownLanguage, err)
	}

	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(doc) == 0 {
		return nil, ErrNoLanguages
	}

	c := &Catalog{
		fallback: fallbackTag,
		messages: make(map[language.Tag]map[string]string, len(doc)),
	}

	// The fallback goes first so the matcher prefers it when nothing else
	// matches.
	for lang, messages := range doc {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
		c.messages[tag] = messages
		if tag != fallbackTag {
			c.tags = append(c.tags, tag)
		}
	}
	if _, ok := c.messages[fallbackTag]; !ok {
		return nil, fmt.Errorf("%w: fallback %q not in document", ErrNoLanguages, fallback)
	}
	c.tags = append([]language.Tag{fallbackTag}, c.tags...)
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Languages returns the catalog's language tags, fallback first.
func (c *Catalog) Languages() []language.Tag {
	tags := make([]language.Tag, len(c.tags))
	copy(tags, c.tags)
	return tags
}

// Pick negotiates the best catalog language for an Accept-Language header.
// Returns the fallback for empty or unparseable headers.
func (c *Catalog) Pick(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.fallback
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return c.fallback
	}
	_, index, _ := c.matcher.Match(desired...)
	return c.tags[index]
}

// T resolves the message for key in lang, filling %{name} placeholders from
// the name/value argument pairs. Falls back to the fallback language for
// missing keys and finally to the key itself, so a missing translation never
// produces an empty message.
func (c *Catalog) T(lang language.Tag, key string, args ...string) string {
	template, ok := c.lookup(lang, key)
	if !ok {
		if template, ok = c.lookup(c.fallback, key); !ok {
			return key
		}
	}

	for i := 0; i+1 < len(args); i += 2 {
		template = strings.ReplaceAll(template, "%{"+args[i]+"}", args[i+1])
	}
	return template
}

func (c *Catalog) lookup(lang language.Tag, key string) (string, bool) {
	messages, ok := c.messages[lang]
	if !ok {
		// The matcher may return a tag variant (e.g. "de-u-rg-..."); retry
		// with the base language.
		base, _ := lang.Base()
		for tag, m := range c.messages {
			if b, _ := tag.Base(); b == base {
				messages = m
				ok = true
				break
			}
		}
		if !ok {
			return "", false
		}
	}
	template, ok := messages[key]
	return template, ok
}
