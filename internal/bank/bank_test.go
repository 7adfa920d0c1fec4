package bank

import (
	"bytes"
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/srs"
)

func sampleBank(t *testing.T) *Bank {
	t.Helper()
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	b := New("test bank", now)

	q1 := NewMultipleChoice("What is the capital of France?", "Paris",
		[]string{"Berlin", "Madrid", "Rome"}, Options{Tags: []string{"Geography", "europe"}})
	q1.CreatedAt = now
	b.Add(q1)

	q2 := NewTrueFalse("The Pacific is the largest ocean.", true,
		Options{Tags: []string{"geography"}})
	q2.CreatedAt = now.Add(time.Minute)
	b.Add(q2)

	q3 := NewShortAnswer("Who painted the Mona Lisa?",
		[]string{"Da Vinci", "Leonardo da Vinci"}, Options{Tags: []string{"art"}})
	q3.CreatedAt = now.Add(2 * time.Minute)
	b.Add(q3)

	return b
}

func TestAddRemoveGet(t *testing.T) {
	b := sampleBank(t)
	if len(b.Questions) != 3 {
		t.Fatalf("len = %d, want 3", len(b.Questions))
	}

	q := b.All()[0]
	if got := b.Get(q.ID); got != q {
		t.Error("Get returned wrong question")
	}
	if !b.Remove(q.ID) {
		t.Error("Remove returned false for existing question")
	}
	if b.Remove(q.ID) {
		t.Error("Remove returned true for missing question")
	}
	if b.Get(q.ID) != nil {
		t.Error("question still present after Remove")
	}
}

func TestSearch(t *testing.T) {
	b := sampleBank(t)

	if got := b.Search("capital"); len(got) != 1 {
		t.Errorf("Search(capital) = %d results, want 1", len(got))
	}
	// Matches answer text, not question text.
	if got := b.Search("berlin"); len(got) != 1 {
		t.Errorf("Search(berlin) = %d results, want 1", len(got))
	}
	if got := b.Search("zzzz"); len(got) != 0 {
		t.Errorf("Search(zzzz) = %d results, want 0", len(got))
	}
}

func TestTags(t *testing.T) {
	b := sampleBank(t)

	if got := b.ByTag("GEOGRAPHY"); len(got) != 2 {
		t.Errorf("ByTag(GEOGRAPHY) = %d, want 2 (tags normalize)", len(got))
	}
	tags := b.AllTags()
	want := []string{"art", "europe", "geography"}
	if len(tags) != len(want) {
		t.Fatalf("AllTags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("AllTags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}

	counts := b.TagCounts()
	if counts[0].Tag != "geography" || counts[0].Count != 2 {
		t.Errorf("TagCounts[0] = %+v, want geography/2", counts[0])
	}
}

func TestQuestionTagOps(t *testing.T) {
	q := NewMultipleChoice("q", "a", []string{"b"}, Options{})
	q.AddTag("  Math ")
	q.AddTag("math")
	if len(q.Tags) != 1 || q.Tags[0] != "math" {
		t.Errorf("Tags = %v, want [math]", q.Tags)
	}
	q.RemoveTag("MATH")
	if len(q.Tags) != 0 {
		t.Errorf("Tags = %v after remove, want empty", q.Tags)
	}
}

func TestCorrectAnswer(t *testing.T) {
	q := NewMultipleChoice("q", "right", []string{"wrong1", "wrong2"}, Options{})
	ca := q.CorrectAnswer()
	if ca == nil || ca.Text != "right" {
		t.Fatalf("CorrectAnswer = %+v", ca)
	}
	if got := q.AnswerByID(ca.ID); got == nil || got.Text != "right" {
		t.Errorf("AnswerByID = %+v", got)
	}
	if q.AnswerByID("nope") != nil {
		t.Error("AnswerByID(nope) should be nil")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := sampleBank(t)

	// Give one question non-trivial scheduling and rating state.
	q := b.All()[0]
	q.Rating = 1337.5
	q.Schedule = srs.State{
		IntervalDays:  15.9,
		EaseFactor:    2.65,
		NextReview:    time.Date(2025, 4, 17, 10, 0, 0, 0, time.UTC),
		TimesAnswered: 7,
		TimesCorrect:  5,
	}
	sess := NewStudySession([]string{q.ID}, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC))
	sess.Results[q.ID] = ResultCorrect
	sess.EndTime = sess.StartTime.Add(5 * time.Minute)
	b.Sessions = append(b.Sessions, sess)

	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Name != b.Name || len(got.Questions) != 3 || len(got.Sessions) != 1 {
		t.Fatalf("round trip lost structure: %+v", got)
	}
	gq := got.Get(q.ID)
	if gq == nil {
		t.Fatal("question missing after round trip")
	}
	if gq.Rating != 1337.5 {
		t.Errorf("Rating = %v, want 1337.5", gq.Rating)
	}
	if gq.Schedule != q.Schedule {
		t.Errorf("Schedule = %+v, want %+v", gq.Schedule, q.Schedule)
	}
	if got.Sessions[0].Results[q.ID] != ResultCorrect {
		t.Error("session result lost in round trip")
	}
}

func TestSessionCounts(t *testing.T) {
	s := NewStudySession([]string{"a", "b", "c", "d"}, time.Now())
	s.Results["a"] = ResultCorrect
	s.Results["b"] = ResultCorrect
	s.Results["c"] = ResultIncorrect
	s.Results["d"] = ResultSkipped

	if s.CorrectCount() != 2 || s.IncorrectCount() != 1 || s.SkippedCount() != 1 {
		t.Errorf("counts = %d/%d/%d", s.CorrectCount(), s.IncorrectCount(), s.SkippedCount())
	}
	if got := s.Accuracy(); got != 2.0/3.0 {
		t.Errorf("Accuracy = %v, want 2/3 (skips excluded)", got)
	}
}

func TestMatchShortAnswer(t *testing.T) {
	acceptable := []string{"Da Vinci", "Leonardo da Vinci"}

	tests := []struct {
		input string
		want  bool
	}{
		{"da vinci", true},
		{"  DA VINCI  ", true},
		{"da vinchi", true}, // one typo, above fuzzy threshold
		{"picasso", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := MatchShortAnswer(tt.input, acceptable); got != tt.want {
			t.Errorf("MatchShortAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMatchShortAnswerFuzzyThreshold(t *testing.T) {
	acceptable := []string{"mitochondria"}

	tests := []struct {
		input string
		want  bool
	}{
		{"mitochondria", true},  // exact
		{"mitochondrio", true},  // 1 edit in 12, similarity ~0.92
		{"mitochandrio", true},  // 2 edits, similarity ~0.83
		{"mitechandrio", false}, // 3 edits, similarity 0.75
		{"ribosome", false},
	}
	for _, tt := range tests {
		if got := MatchShortAnswer(tt.input, acceptable); got != tt.want {
			t.Errorf("MatchShortAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
