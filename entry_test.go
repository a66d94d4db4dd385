package wordinfo_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/wordinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Meanings(t *testing.T) {
	t.Parallel()

	t.Run("groups senses by uppercased part of speech", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Word: "travel", Senses: []wordinfo.Sense{
			{ID: "1", PartOfSpeech: "noun", Definition: "self-propelled movement"},
			{ID: "2", PartOfSpeech: "verb", Definition: "change location"},
			{ID: "3", PartOfSpeech: "noun", Definition: "the act of going from one place to another"},
		}}

		m := entry.Meanings()

		assert.Equal(t, []string{"NOUN", "VERB"}, m.Labels())
		nouns, _ := m.Get("NOUN")
		assert.Equal(t, []wordinfo.Meaning{
			{Text: "self-propelled movement"},
			{Text: "the act of going from one place to another"},
		}, nouns)
	})

	t.Run("never surfaces dataset examples", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Word: "grand", Senses: []wordinfo.Sense{
			{PartOfSpeech: "adjective", Definition: "of or befitting a lord", Example: "a grand gesture"},
		}}

		m := entry.Meanings()

		adjectives, ok := m.Get("ADJECTIVE")
		require.True(t, ok)
		require.Len(t, adjectives, 1)
		assert.Nil(t, adjectives[0].Example)
	})

	t.Run("does not cap meanings per part of speech", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Word: "grand"}
		for range 8 {
			entry.Senses = append(entry.Senses, wordinfo.Sense{PartOfSpeech: "adjective", Definition: "grand"})
		}

		adjectives, _ := entry.Meanings().Get("ADJECTIVE")

		assert.Len(t, adjectives, 8)
	})
}

func TestEntry_Synonyms(t *testing.T) {
	t.Parallel()

	t.Run("flattens synonyms in sense order", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Senses: []wordinfo.Sense{
			{PartOfSpeech: "verb", Synonyms: []string{"lay", "screw"}},
			{PartOfSpeech: "verb", Synonyms: []string{"bang"}},
		}}

		assert.Equal(t, []string{"lay", "screw", "bang"}, entry.Synonyms())
	})

	t.Run("keeps duplicates and skips senses without synonyms", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Senses: []wordinfo.Sense{
			{PartOfSpeech: "noun", Synonyms: []string{"journeying"}},
			{PartOfSpeech: "noun"},
			{PartOfSpeech: "verb", Synonyms: []string{"travel"}},
			{PartOfSpeech: "verb", Synonyms: []string{"travel"}},
		}}

		assert.Equal(t, []string{"journeying", "travel", "travel"}, entry.Synonyms())
	})

	t.Run("returns empty list when no sense has synonyms", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Senses: []wordinfo.Sense{{PartOfSpeech: "noun"}}}

		synonyms := entry.Synonyms()

		assert.NotNil(t, synonyms)
		assert.Empty(t, synonyms)
	})
}

func TestEntry_PartOfSpeech(t *testing.T) {
	t.Parallel()

	t.Run("returns distinct labels in first-seen order", func(t *testing.T) {
		t.Parallel()

		entry := &wordinfo.Entry{Senses: []wordinfo.Sense{
			{PartOfSpeech: "adjective"},
			{PartOfSpeech: "noun"},
			{PartOfSpeech: "adjective"},
			{PartOfSpeech: "Noun"},
		}}

		pos := entry.PartOfSpeech()

		assert.False(t, pos.IsSingle())
		assert.Equal(t, []string{"ADJECTIVE", "NOUN"}, pos.Labels())
	})
}

func TestEntry_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	data := `{
		"word": "mask",
		"wordset_id": "6c1d3a8c59",
		"meanings": [
			{"id": "a1", "def": "a party of guests wearing costumes", "example": "a masked ball", "speech_part": "noun", "synonyms": ["masquerade"]},
			{"id": "a2", "def": "hide under a false appearance", "speech_part": "verb"}
		]
	}`

	var entry wordinfo.Entry
	require.NoError(t, json.Unmarshal([]byte(data), &entry))

	assert.Equal(t, "mask", entry.Word)
	require.Len(t, entry.Senses, 2)
	assert.Equal(t, "noun", entry.Senses[0].PartOfSpeech)
	assert.Equal(t, "a party of guests wearing costumes", entry.Senses[0].Definition)
	assert.Equal(t, "a masked ball", entry.Senses[0].Example)
	assert.Equal(t, []string{"masquerade"}, entry.Senses[0].Synonyms)
	assert.Nil(t, entry.Senses[1].Synonyms)
}

func TestPartitionKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{word: "grand", want: "g", wantOK: true},
		{word: "Travel", want: "t", wantOK: true},
		{word: "3d", wantOK: false},
		{word: "éclair", wantOK: false},
		{word: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			got, ok := wordinfo.PartitionKey(tt.word)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
