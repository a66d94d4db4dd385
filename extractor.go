package wordinfo

// Extractor turns live dictionary and thesaurus pages into structured data.
// It owns every rule tied to the markup of those sites so the lookup
// contract does not change when the sites do.
type Extractor interface {
	// ExtractDefinitions reads the part-of-speech sections of a dictionary page.
	// Returns EMALFORMED if the page lacks the expected structure.
	ExtractDefinitions(html string) (*Definitions, error)

	// ExtractSynonyms returns the synonyms listed on a thesaurus page.
	// Returns ENOTFOUND if the page lists none.
	ExtractSynonyms(html string) ([]string, error)

	// ExtractAntonyms returns the antonyms listed on a thesaurus page.
	// Returns ENOTFOUND if the page lists none.
	ExtractAntonyms(html string) ([]string, error)
}
