package wordinfo_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/wordinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartOfSpeech(t *testing.T) {
	t.Parallel()

	t.Run("single result holds one label", func(t *testing.T) {
		t.Parallel()

		pos := wordinfo.SinglePartOfSpeech("NOUN")

		assert.True(t, pos.IsSingle())
		assert.Equal(t, "NOUN", pos.Label())
		assert.Equal(t, []string{"NOUN"}, pos.Labels())
	})

	t.Run("multiple result holds ordered labels", func(t *testing.T) {
		t.Parallel()

		pos := wordinfo.MultiplePartsOfSpeech([]string{"NOUN", "VERB"})

		assert.False(t, pos.IsSingle())
		assert.Empty(t, pos.Label())
		assert.Equal(t, []string{"NOUN", "VERB"}, pos.Labels())
	})

	t.Run("multiple result with one label is not single", func(t *testing.T) {
		t.Parallel()

		pos := wordinfo.MultiplePartsOfSpeech([]string{"NOUN"})

		assert.False(t, pos.IsSingle())
	})

	t.Run("labels are copied", func(t *testing.T) {
		t.Parallel()

		labels := []string{"NOUN"}
		pos := wordinfo.MultiplePartsOfSpeech(labels)
		labels[0] = "VERB"

		assert.Equal(t, []string{"NOUN"}, pos.Labels())
	})
}

func TestPartOfSpeech_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes single as string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(wordinfo.SinglePartOfSpeech("NOUN"))

		require.NoError(t, err)
		assert.Equal(t, `"NOUN"`, string(data))
	})

	t.Run("encodes multiple as array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(wordinfo.MultiplePartsOfSpeech([]string{"NOUN", "VERB (USED WITH OBJECT)"}))

		require.NoError(t, err)
		assert.Equal(t, `["NOUN","VERB (USED WITH OBJECT)"]`, string(data))
	})

	t.Run("encodes empty multiple as empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(wordinfo.MultiplePartsOfSpeech(nil))

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})
}
