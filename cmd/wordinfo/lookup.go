package main

import "github.com/fwojciec/wordinfo"

// Run executes the meaning command.
func (c *MeaningCmd) Run(deps *Dependencies) error {
	m, err := deps.Lookup.Meanings(deps.Ctx, c.Word)
	if err != nil {
		return deps.fail(err)
	}
	return deps.print(m, wordinfo.FormatMeanings(m))
}

// Run executes the synonym command.
func (c *SynonymCmd) Run(deps *Dependencies) error {
	words, err := deps.Lookup.Synonyms(deps.Ctx, c.Word)
	if err != nil {
		return deps.fail(err)
	}
	if len(words) == 0 && !deps.JSON {
		return deps.print(words, "No synonyms found.")
	}
	return deps.print(words, wordinfo.FormatWords(words))
}

// Run executes the antonym command.
func (c *AntonymCmd) Run(deps *Dependencies) error {
	words, err := deps.Lookup.Antonyms(deps.Ctx, c.Word)
	if err != nil {
		return deps.fail(err)
	}
	return deps.print(words, wordinfo.FormatWords(words))
}

// Run executes the pos command.
func (c *PosCmd) Run(deps *Dependencies) error {
	pos, err := deps.Lookup.PartOfSpeech(deps.Ctx, c.Word)
	if err != nil {
		return deps.fail(err)
	}
	return deps.print(pos, wordinfo.FormatPartOfSpeech(pos))
}
