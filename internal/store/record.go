package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrMalformed is returned when a persisted deck cannot be decoded.
var ErrMalformed = errors.New("malformed deck")

// Record is the persisted shape of a single item. Field order is the
// on-disk order, so encoding a loaded record reproduces the same bytes.
type Record struct {
	Text       string   `json:"text"`
	RightCount int      `json:"rightCount"`
	WrongCount int      `json:"wrongCount"`
	Asked      int      `json:"asked"`
	Streak     int      `json:"streak"`
	Difficulty *float64 `json:"difficulty"`
	Category   *string  `json:"category"`
}

// UnmarshalJSON accepts the older "word" and "phrasal_verb" keys in place of "text".
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var aux struct {
		plain
		Word        *string `json:"word"`
		PhrasalVerb *string `json:"phrasal_verb"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if r.Text == "" {
		switch {
		case aux.Word != nil:
			r.Text = *aux.Word
		case aux.PhrasalVerb != nil:
			r.Text = *aux.PhrasalVerb
		}
	}
	return nil
}

// Deck persists the items of one deck.
type Deck interface {
	// Load returns the persisted records in their stored order. A deck
	// that was never saved loads as empty.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces the persisted records.
	Save(ctx context.Context, records []Record) error

	// Archive moves the current persisted deck to a timestamped location
	// and returns it. An empty path means there was nothing to archive.
	Archive(ctx context.Context) (string, error)

	Close() error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptEventData captures a single completed spelling attempt.
type AttemptEventData struct {
	SessionID string
	Deck      string
	Text      string
	Answer    string
	Correct   bool
	Category  string
}

// AttemptEventRecord is an AttemptEventData read back from storage.
type AttemptEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is an LLMRequestEventData read back from storage.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM requests by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM token usage by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AttemptRecorder is implemented by decks that keep an attempt history.
type AttemptRecorder interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AttemptRecorder

	// RecentAttempts returns attempts newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
