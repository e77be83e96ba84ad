package suggest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/llm"
	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/vocab"
)

// lengthEstimator scores by rune count so tests control ordering.
type lengthEstimator struct{}

func (lengthEstimator) Estimate(text string) float64 {
	return float64(len(text)) / 2
}

func response(t *testing.T, items ...[3]string) llm.MockResponse {
	t.Helper()
	type item struct {
		Text       string `json:"text"`
		Definition string `json:"definition"`
		Example    string `json:"example"`
	}
	out := struct {
		Items []item `json:"items"`
	}{Items: []item{}}
	for _, it := range items {
		out.Items = append(out.Items, item{it[0], it[1], it[2]})
	}
	data, err := json.Marshal(out)
	require.NoError(t, err)
	return llm.MockResponse{Content: data}
}

func TestSuggest_FiltersAndOrders(t *testing.T) {
	mock := llm.NewMockProvider(response(t,
		[3]string{"Receive", "get", "I receive mail."},
		[3]string{"rhythm", "beat", "Keep the rhythm."},
		[3]string{"give up", "stop", "Never give up."},
		[3]string{"rhythm", "dup", "dup"},
		[3]string{"  ", "", ""},
		[3]string{"accommodate", "fit", "It can accommodate ten."},
		[3]string{"co-operate", "work", "x"},
	))

	s := New(mock, lengthEstimator{}, DefaultConfig())
	got, err := s.Suggest(context.Background(), Input{
		Kind:             KindWords,
		Count:            2,
		TargetDifficulty: 3,
		Known:            []string{"RECEIVE"},
	})
	require.NoError(t, err)

	// rhythm scores 3.0, accommodate 5.5.
	require.Len(t, got, 2)
	assert.Equal(t, "rhythm", got[0].Text)
	assert.Equal(t, "beat", got[0].Definition)
	assert.InDelta(t, 3.0, got[0].Difficulty, 1e-9)
	assert.Equal(t, "accommodate", got[1].Text)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	call := reqs[0]
	assert.Equal(t, SuggestionSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Kind: words")
	assert.Contains(t, call.Messages[0].Content, "1. RECEIVE")
}

func TestSuggest_PhrasalVerbs(t *testing.T) {
	mock := llm.NewMockProvider(response(t,
		[3]string{"look up", "search", "Look it up."},
		[3]string{"carry", "hold", "Carry it."},
		[3]string{"put up with", "tolerate", "I put up with it."},
	))

	got, err := New(mock, lengthEstimator{}, DefaultConfig()).Suggest(context.Background(), Input{
		Kind:  KindPhrase,
		Count: 5,
	})
	require.NoError(t, err)

	texts := []string{}
	for _, s := range got {
		texts = append(texts, s.Text)
	}
	assert.ElementsMatch(t, []string{"look up", "put up with"}, texts)
}

func TestSuggest_Errors(t *testing.T) {
	s := New(llm.NewMockProvider(), lengthEstimator{}, DefaultConfig())
	_, err := s.Suggest(context.Background(), Input{Kind: KindWords, Count: 0})
	assert.Error(t, err)

	_, err = s.Suggest(context.Background(), Input{Kind: KindWords, Count: 1})
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	bad := New(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"nope"`)}), lengthEstimator{}, DefaultConfig())
	_, err = bad.Suggest(context.Background(), Input{Kind: KindWords, Count: 1})
	assert.Error(t, err)
}

func TestKindForDeck(t *testing.T) {
	assert.Equal(t, KindWords, KindForDeck("words"))
	assert.Equal(t, KindPhrase, KindForDeck("phrasal_verbs"))
}

func TestNumberedList(t *testing.T) {
	assert.Equal(t, "None", numberedList(nil, 5))
	assert.Equal(t, "1. b\n2. c", numberedList([]string{"a", "b", "c"}, 2))
}

func TestInputFor(t *testing.T) {
	c := vocab.NewCollection(lengthEstimator{})
	_, err := c.Add("rhythm")
	require.NoError(t, err)
	it, err := c.Add("receive")
	require.NoError(t, err)
	for range 3 {
		it.RecordAttempt(false)
	}
	require.Equal(t, mastery.CategoryStruggling, it.Category)

	in := InputFor(c, KindWords, 4, 2.5)
	assert.Equal(t, []string{"rhythm", "receive"}, in.Known)
	assert.Equal(t, []string{"receive"}, in.Struggling)
	assert.Equal(t, 4, in.Count)
}
