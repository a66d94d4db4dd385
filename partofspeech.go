package wordinfo

import "encoding/json"

// PartOfSpeech is either a single part-of-speech label or an ordered list of
// labels. Construct it with SinglePartOfSpeech or MultiplePartsOfSpeech.
type PartOfSpeech struct {
	labels   []string
	multiple bool
}

// SinglePartOfSpeech returns a result holding exactly one label.
func SinglePartOfSpeech(label string) PartOfSpeech {
	return PartOfSpeech{labels: []string{label}}
}

// MultiplePartsOfSpeech returns a result holding an ordered list of labels.
func MultiplePartsOfSpeech(labels []string) PartOfSpeech {
	return PartOfSpeech{labels: append([]string{}, labels...), multiple: true}
}

// IsSingle reports whether the result holds a single label.
func (p PartOfSpeech) IsSingle() bool {
	return !p.multiple && len(p.labels) == 1
}

// Label returns the label of a single result, or "" otherwise.
func (p PartOfSpeech) Label() string {
	if !p.IsSingle() {
		return ""
	}
	return p.labels[0]
}

// Labels returns every label in order. A single result yields one label.
func (p PartOfSpeech) Labels() []string {
	return append([]string{}, p.labels...)
}

// MarshalJSON encodes a single result as a string and a multiple result as an array.
func (p PartOfSpeech) MarshalJSON() ([]byte, error) {
	if p.IsSingle() {
		return json.Marshal(p.labels[0])
	}
	return json.Marshal(p.Labels())
}
