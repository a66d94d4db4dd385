package goquery

// Selectors holds the CSS selectors that locate lexical data in dictionary
// and thesaurus pages. They mirror the markup of dictionary.com and
// thesaurus.com and are the first thing to update when those sites change.
type Selectors struct {
	// Content is the primary content region of a dictionary page.
	Content string

	// Section is a part-of-speech section inside the content region.
	Section string

	// Label holds a section's part-of-speech label, e.g. "noun,".
	Label string

	// Definitions is a section's definition container.
	Definitions string

	// DefaultContent is the optional sub-block of the definition container
	// holding one div per definition.
	DefaultContent string

	// Synonyms is the thesaurus container whose list items are synonyms.
	Synonyms string

	// Antonyms is the thesaurus container whose list items are antonyms.
	Antonyms string
}

// DefaultSelectors returns the selectors for dictionary.com and thesaurus.com.
func DefaultSelectors() Selectors {
	return Selectors{
		Content:        "div.default-content",
		Section:        "section.css-109x55k.e1hk9ate4",
		Label:          "span.luna-pos",
		Definitions:    "div.css-10n3ydx.e1hk9ate0",
		DefaultContent: "div.default-content",
		Synonyms:       "div.css-ixatld.e15rdun50",
		Antonyms:       "div#antonyms",
	}
}
