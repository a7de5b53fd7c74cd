package inmemory

import "sync"

type Snapshot struct {
	IntentTotal    uint64            `json:"intent_total"`
	IntentAccepted uint64            `json:"intent_accepted"`
	IntentRejected uint64            `json:"intent_rejected"`
	ByIntentType   map[string]uint64 `json:"by_intent_type"`
}

// Recorder counts intent outcomes in process memory. It backs the
// /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	accepted uint64
	rejected uint64
	byIntent map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byIntent: map[string]uint64{},
	}
}

func (r *Recorder) RecordAccepted(intentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted++
	r.byIntent[intentType]++
}

func (r *Recorder) RecordRejected(intentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byIntent[intentType]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		IntentAccepted: r.accepted,
		IntentRejected: r.rejected,
		IntentTotal:    r.accepted + r.rejected,
		ByIntentType:   make(map[string]uint64, len(r.byIntent)),
	}
	for k, v := range r.byIntent {
		out.ByIntentType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
