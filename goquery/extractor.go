// Package goquery implements wordinfo.Extractor for dictionary.com and
// thesaurus.com pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordinfo"
)

// MaxMeanings is the number of raw definitions read per section.
const MaxMeanings = 3

// Ensure Extractor implements wordinfo.Extractor at compile time.
var _ wordinfo.Extractor = (*Extractor)(nil)

// Extractor reads definitions, synonyms and antonyms from live pages.
type Extractor struct {
	selectors Selectors
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces the default selectors.
func WithSelectors(s Selectors) Option {
	return func(e *Extractor) {
		e.selectors = s
	}
}

// NewExtractor creates a new Extractor using DefaultSelectors unless
// overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: DefaultSelectors()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractDefinitions reads every part-of-speech section of a dictionary page.
// A page without explicit sections is read as one implicit section spanning
// the whole content region.
func (e *Extractor) ExtractDefinitions(html string) (*wordinfo.Definitions, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	content := doc.Find(e.selectors.Content).First()
	if content.Length() == 0 {
		return nil, wordinfo.Errorf(wordinfo.EMALFORMED, "dictionary page has no content region")
	}

	sections := content.Find(e.selectors.Section)
	if sections.Length() == 0 {
		section, err := e.section(content)
		if err != nil {
			return nil, err
		}
		return &wordinfo.Definitions{Sections: []wordinfo.Section{section}, Implicit: true}, nil
	}

	defs := &wordinfo.Definitions{Sections: make([]wordinfo.Section, 0, sections.Length())}
	for i := range sections.Nodes {
		section, err := e.section(sections.Eq(i))
		if err != nil {
			return nil, err
		}
		defs.Sections = append(defs.Sections, section)
	}
	return defs, nil
}

// ExtractSynonyms returns the synonym list items of a thesaurus page.
func (e *Extractor) ExtractSynonyms(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	words := listItems(doc.Find(e.selectors.Synonyms).First())
	if len(words) == 0 {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "no synonyms for this word")
	}
	return words, nil
}

// ExtractAntonyms returns the antonym list items of a thesaurus page.
func (e *Extractor) ExtractAntonyms(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	words := listItems(doc.Find(e.selectors.Antonyms).First())
	if len(words) == 0 {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "no antonyms for this word")
	}
	return words, nil
}

func (e *Extractor) section(sel *goquery.Selection) (wordinfo.Section, error) {
	label := sel.Find(e.selectors.Label).First()
	if label.Length() == 0 {
		return wordinfo.Section{}, wordinfo.Errorf(wordinfo.EMALFORMED, "dictionary section has no part-of-speech label")
	}

	meanings, err := e.meanings(sel)
	if err != nil {
		return wordinfo.Section{}, err
	}

	return wordinfo.Section{
		PartOfSpeech: normalizeLabel(label.Text()),
		Meanings:     meanings,
	}, nil
}

func (e *Extractor) meanings(sel *goquery.Selection) ([]wordinfo.Meaning, error) {
	container := sel.Find(e.selectors.Definitions).First()
	if container.Length() == 0 {
		return nil, wordinfo.Errorf(wordinfo.EMALFORMED, "dictionary section has no definition container")
	}

	var raw []string
	if block := container.Find(e.selectors.DefaultContent).First(); block.Length() > 0 {
		block.Find("div").Each(func(_ int, d *goquery.Selection) {
			raw = append(raw, dropArtifacts(strings.TrimSpace(d.Text())))
		})
	} else {
		container.Find("span").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimRight(strings.TrimSpace(s.Text()), ".")
			if strings.Contains(text, "Slang") {
				return
			}
			raw = append(raw, text)
		})
	}

	if len(raw) > MaxMeanings {
		raw = raw[:MaxMeanings]
	}
	return splitMeanings(raw), nil
}

// normalizeLabel turns label text such as " noun, " into "NOUN".
func normalizeLabel(text string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(text)), ",", "")
}

// dropArtifacts splits a definition on periods, drops the fragments holding
// numbering artifacts ("(def", "1)") and joins the rest back together.
func dropArtifacts(text string) string {
	var b strings.Builder
	for _, fragment := range strings.Split(text, ".") {
		if strings.Contains(fragment, "(def") || strings.Contains(fragment, "1)") {
			continue
		}
		b.WriteString(fragment)
	}
	return b.String()
}

// splitMeanings separates each definition from its example at the colon.
// The example is the text between the first and second colon. Definitions
// with no colon and an exclamation mark are interjection markers and dropped.
func splitMeanings(raw []string) []wordinfo.Meaning {
	meanings := make([]wordinfo.Meaning, 0, len(raw))
	for _, text := range raw {
		parts := strings.Split(text, ":")
		switch {
		case len(parts) > 1:
			example := parts[1]
			meanings = append(meanings, wordinfo.Meaning{Text: parts[0], Example: &example})
		case strings.Contains(text, "!"):
			continue
		default:
			meanings = append(meanings, wordinfo.Meaning{Text: text})
		}
	}
	return meanings
}

func listItems(container *goquery.Selection) []string {
	if container.Length() == 0 {
		return nil
	}
	var words []string
	container.Find("li").Each(func(_ int, li *goquery.Selection) {
		words = append(words, strings.TrimSpace(li.Text()))
	})
	return words
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wordinfo.Errorf(wordinfo.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
