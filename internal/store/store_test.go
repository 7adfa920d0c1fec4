package store

import (
	"context"
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	b := bank.New("physics", now)
	q := bank.NewMultipleChoice("What is c?", "299792458 m/s",
		[]string{"3 m/s", "340 m/s"}, bank.Options{Tags: []string{"physics"}})
	q.Rating = 1250
	b.Add(q)

	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, UserRating: 1234.5, Bank: b},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.UserRating != 1234.5 {
		t.Errorf("user rating = %v, want 1234.5", snap.Data.UserRating)
	}
	got := snap.Data.Bank
	if got == nil || got.Name != "physics" || len(got.Questions) != 1 {
		t.Fatalf("bank did not round-trip: %+v", got)
	}
	gq := got.Get(q.ID)
	if gq == nil || gq.Rating != 1250 {
		t.Errorf("question state lost: %+v", gq)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result := "correct"
		if i == 1 {
			result = "incorrect"
		}
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:            "sess-1",
			QuestionID:           "q-1",
			QuestionKind:         "multiple_choice",
			Result:               result,
			ResponseTimeMs:       1500,
			UserRatingBefore:     1200,
			UserRatingAfter:      1216,
			QuestionRatingBefore: 1200,
			QuestionRatingAfter:  1184,
			IntervalDays:         1,
			EaseFactor:           2.65,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("not newest first: %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].QuestionRatingAfter != 1184 {
		t.Errorf("question rating after = %v, want 1184", events[0].QuestionRatingAfter)
	}
}

func TestAppendSessionAndLLMShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "start",
		Tags:      []string{"geography"},
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	err = repo.AppendAttempt(ctx, AttemptEventData{
		SessionID:    "sess-1",
		QuestionID:   "q-1",
		QuestionKind: "true_false",
		Result:       "correct",
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock",
		Model:    "mock",
		Purpose:  "question-gen",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	// The attempt landed between the session and LLM events on the
	// shared counter.
	attempts, err := repo.RecentAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("len = %d, want 1", len(attempts))
	}
	if attempts[0].Sequence != 2 {
		t.Errorf("attempt sequence = %d, want 2", attempts[0].Sequence)
	}
}

func TestLLMRequestQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-3-5-haiku-latest",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
			RequestBody:  `{"topic":"geography"}`,
		})
		if err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	events, err := repo.RecentLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent llm requests: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Sequence != 3 {
		t.Errorf("newest sequence = %d, want 3", events[0].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMRequest(ctx, 1)
	if err != nil {
		t.Fatalf("get llm request: %v", err)
	}
	if got == nil || got.RequestBody != `{"topic":"geography"}` {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMRequest(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing sequence, got %+v", missing)
	}
}
