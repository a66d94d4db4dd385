package mock

import "github.com/fwojciec/wordinfo"

var _ wordinfo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordinfo.Extractor.
type Extractor struct {
	ExtractDefinitionsFn func(html string) (*wordinfo.Definitions, error)
	ExtractSynonymsFn    func(html string) ([]string, error)
	ExtractAntonymsFn    func(html string) ([]string, error)
}

func (e *Extractor) ExtractDefinitions(html string) (*wordinfo.Definitions, error) {
	return e.ExtractDefinitionsFn(html)
}

func (e *Extractor) ExtractSynonyms(html string) ([]string, error) {
	return e.ExtractSynonymsFn(html)
}

func (e *Extractor) ExtractAntonyms(html string) ([]string, error) {
	return e.ExtractAntonymsFn(html)
}
