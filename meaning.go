package wordinfo

import (
	"bytes"
	"encoding/json"
)

// Meaning is one sense of a word.
type Meaning struct {
	Text    string  `json:"meaning"`
	Example *string `json:"examples"`
}

// Section groups the meanings listed under one part of speech.
type Section struct {
	PartOfSpeech string    `json:"partOfSpeech"`
	Meanings     []Meaning `json:"meanings"`
}

// Meanings maps uppercase part-of-speech labels to their meanings.
// Labels are unique and keep the order in which they were first seen.
type Meanings struct {
	sections []Section
}

// set stores meanings under label. A label that already exists keeps its
// position and has its meanings replaced.
func (m *Meanings) set(label string, meanings []Meaning) {
	for i := range m.sections {
		if m.sections[i].PartOfSpeech == label {
			m.sections[i].Meanings = meanings
			return
		}
	}
	m.sections = append(m.sections, Section{PartOfSpeech: label, Meanings: meanings})
}

// add appends a meaning to the list stored under label.
func (m *Meanings) add(label string, meaning Meaning) {
	for i := range m.sections {
		if m.sections[i].PartOfSpeech == label {
			m.sections[i].Meanings = append(m.sections[i].Meanings, meaning)
			return
		}
	}
	m.sections = append(m.sections, Section{PartOfSpeech: label, Meanings: []Meaning{meaning}})
}

// Len returns the number of parts of speech.
func (m Meanings) Len() int {
	return len(m.sections)
}

// Labels returns the part-of-speech labels in order.
func (m Meanings) Labels() []string {
	labels := make([]string, 0, len(m.sections))
	for _, s := range m.sections {
		labels = append(labels, s.PartOfSpeech)
	}
	return labels
}

// Get returns the meanings stored under label.
func (m Meanings) Get(label string) ([]Meaning, bool) {
	for _, s := range m.sections {
		if s.PartOfSpeech == label {
			return s.Meanings, true
		}
	}
	return nil, false
}

// Sections returns a copy of the ordered sections.
func (m Meanings) Sections() []Section {
	return append([]Section(nil), m.sections...)
}

// MarshalJSON encodes the meanings as a JSON object whose keys follow label order.
func (m Meanings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.PartOfSpeech)
		if err != nil {
			return nil, err
		}
		meanings := s.Meanings
		if meanings == nil {
			meanings = []Meaning{}
		}
		value, err := json.Marshal(meanings)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Definitions holds the sections extracted from a live dictionary page.
type Definitions struct {
	Sections []Section

	// Implicit reports that the page had no explicit part-of-speech sections
	// and its whole content region was read as a single section.
	Implicit bool
}

// Meanings returns the extracted sections keyed by part of speech.
func (d *Definitions) Meanings() Meanings {
	var m Meanings
	for _, s := range d.Sections {
		m.set(s.PartOfSpeech, s.Meanings)
	}
	return m
}

// PartOfSpeech returns the single label of an implicit section, or the
// labels of every explicit section in page order, repeats included.
func (d *Definitions) PartOfSpeech() PartOfSpeech {
	if d.Implicit && len(d.Sections) == 1 {
		return SinglePartOfSpeech(d.Sections[0].PartOfSpeech)
	}
	labels := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		labels = append(labels, s.PartOfSpeech)
	}
	return MultiplePartsOfSpeech(labels)
}
