package manager

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/store"
)

// mockEventRepo is a minimal mock for tests.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentLLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMRequest(_ context.Context, _ int64) (*store.LLMRequestEvent, error) {
	return nil, nil
}

var testNow = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, events store.EventRepo) *Manager {
	t.Helper()
	m, err := New(Options{
		Events: events,
		Now:    func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func addQuestions(m *Manager, n int) []*bank.Question {
	qs := make([]*bank.Question, n)
	for i := 0; i < n; i++ {
		q := bank.NewMultipleChoice("question", "right", []string{"wrong"},
			bank.Options{Tags: []string{"test"}})
		q.Text = q.ID // unique text so BulkAdd-style dedup never collides
		m.AddQuestion(q)
		qs[i] = q
	}
	return qs
}

func TestAddQuestionSeedsState(t *testing.T) {
	m := newTestManager(t, nil)
	q := bank.NewTrueFalse("the sky is blue", true, bank.Options{})
	m.AddQuestion(q)

	if !q.Schedule.Unseen() {
		t.Error("new question should be unseen")
	}
	if q.Schedule.EaseFactor != 2.5 {
		t.Errorf("ease = %v, want 2.5", q.Schedule.EaseFactor)
	}
	if q.Rating != 1200 {
		t.Errorf("rating = %v, want 1200", q.Rating)
	}
}

func TestNewRestoresZeroRating(t *testing.T) {
	// Ratings are unbounded, so a persisted 0.0 is a legitimate value
	// and must not be confused with "no rating stored".
	zero := 0.0
	m, err := New(Options{UserRating: &zero})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if m.UserRating() != 0 {
		t.Errorf("user rating = %v, want 0", m.UserRating())
	}

	fresh, err := New(Options{})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if fresh.UserRating() != 1200 {
		t.Errorf("fresh user rating = %v, want 1200", fresh.UserRating())
	}
}

func TestAnswerCorrectUpdatesBothEngines(t *testing.T) {
	events := &mockEventRepo{}
	m := newTestManager(t, events)
	qs := addQuestions(m, 1)
	q := qs[0]

	ctx := context.Background()
	if _, err := m.StartSession(ctx, SessionOptions{}); err != nil {
		t.Fatalf("start session: %v", err)
	}

	report, err := m.Answer(ctx, q.ID, q.CorrectAnswer().ID, 4.2)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}

	if !report.Correct {
		t.Error("report.Correct = false")
	}
	// Equal 1200 ratings with K=32: winner gains 16.
	if report.UserRating != 1216 {
		t.Errorf("user rating = %v, want 1216", report.UserRating)
	}
	if report.QuestionRating != 1184 {
		t.Errorf("question rating = %v, want 1184", report.QuestionRating)
	}
	if report.IntervalDays != 1 {
		t.Errorf("interval = %v, want 1 (first correct)", report.IntervalDays)
	}
	if q.Schedule.TimesAnswered != 1 || q.Schedule.TimesCorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1",
			q.Schedule.TimesAnswered, q.Schedule.TimesCorrect)
	}
	if m.UserRating() != 1216 {
		t.Errorf("manager user rating = %v, want 1216", m.UserRating())
	}

	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	ev := events.attempts[0]
	if ev.Result != "correct" || ev.UserRatingAfter != 1216 || ev.ResponseTimeMs != 4200 {
		t.Errorf("attempt event = %+v", ev)
	}
	if ev.SessionID == "" {
		t.Error("attempt event missing session id")
	}
}

func TestAnswerUnknownIDs(t *testing.T) {
	m := newTestManager(t, nil)
	qs := addQuestions(m, 1)
	ctx := context.Background()

	if _, err := m.Answer(ctx, "missing", "x", 0); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
	if _, err := m.Answer(ctx, qs[0].ID, "missing", 0); !errors.Is(err, ErrAnswerNotFound) {
		t.Errorf("err = %v, want ErrAnswerNotFound", err)
	}
}

func TestAnswerTextFuzzyMatch(t *testing.T) {
	m := newTestManager(t, nil)
	q := bank.NewShortAnswer("Who painted the Mona Lisa?",
		[]string{"Leonardo da Vinci"}, bank.Options{})
	m.AddQuestion(q)

	report, err := m.AnswerText(context.Background(), q.ID, "leonardo da vinci", 3)
	if err != nil {
		t.Fatalf("answer text: %v", err)
	}
	if !report.Correct {
		t.Error("exact normalized match should be correct")
	}

	report, err = m.AnswerText(context.Background(), q.ID, "banksy", 3)
	if err != nil {
		t.Fatalf("answer text: %v", err)
	}
	if report.Correct {
		t.Error("wrong answer graded correct")
	}
}

func TestSkipPostponesWithoutRatingChange(t *testing.T) {
	events := &mockEventRepo{}
	m := newTestManager(t, events)
	qs := addQuestions(m, 1)
	q := qs[0]
	ctx := context.Background()

	// Build up some interval first.
	if _, err := m.Answer(ctx, q.ID, q.CorrectAnswer().ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	ratingBefore := q.Rating
	easeBefore := q.Schedule.EaseFactor
	answeredBefore := q.Schedule.TimesAnswered

	if err := m.Skip(ctx, q.ID); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if q.Rating != ratingBefore {
		t.Errorf("skip changed question rating: %v -> %v", ratingBefore, q.Rating)
	}
	if q.Schedule.EaseFactor != easeBefore {
		t.Errorf("skip changed ease: %v -> %v", easeBefore, q.Schedule.EaseFactor)
	}
	if q.Schedule.TimesAnswered != answeredBefore {
		t.Error("skip counted as an attempt")
	}

	last := events.attempts[len(events.attempts)-1]
	if last.Result != "skipped" {
		t.Errorf("event result = %q, want skipped", last.Result)
	}
}

func TestSessionLifecycle(t *testing.T) {
	events := &mockEventRepo{}
	m := newTestManager(t, events)
	addQuestions(m, 3)
	ctx := context.Background()

	if _, err := m.EndSession(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("end without session: err = %v, want ErrNoSession", err)
	}

	selected, err := m.StartSession(ctx, SessionOptions{MaxQuestions: 2})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("selected = %d, want 2", len(selected))
	}

	if _, err := m.StartSession(ctx, SessionOptions{}); !errors.Is(err, ErrSessionActive) {
		t.Errorf("double start: err = %v, want ErrSessionActive", err)
	}

	if _, err := m.Answer(ctx, selected[0].ID, selected[0].CorrectAnswer().ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := m.Skip(ctx, selected[1].ID); err != nil {
		t.Fatalf("skip: %v", err)
	}

	sess, err := m.EndSession(ctx)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if sess.CorrectCount() != 1 || sess.SkippedCount() != 1 {
		t.Errorf("counts = %d correct, %d skipped", sess.CorrectCount(), sess.SkippedCount())
	}
	if m.ActiveSession() != nil {
		t.Error("session still active after end")
	}
	if len(m.Bank().Sessions) != 1 {
		t.Errorf("history = %d sessions, want 1", len(m.Bank().Sessions))
	}

	// start + end events recorded.
	if len(events.sessions) != 2 {
		t.Fatalf("session events = %d, want 2", len(events.sessions))
	}
	end := events.sessions[1]
	if end.Action != "end" || end.QuestionsServed != 2 || end.CorrectAnswers != 1 || end.Skipped != 1 {
		t.Errorf("end event = %+v", end)
	}
}

func TestStartSessionTagFilter(t *testing.T) {
	m := newTestManager(t, nil)
	q1 := bank.NewTrueFalse("tagged", true, bank.Options{Tags: []string{"math"}})
	q2 := bank.NewTrueFalse("untagged", true, bank.Options{})
	m.AddQuestion(q1)
	m.AddQuestion(q2)

	selected, err := m.StartSession(context.Background(), SessionOptions{Tags: []string{"math"}})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != q1.ID {
		t.Errorf("selected = %v", selected)
	}
}

func TestStartSessionAdaptiveBand(t *testing.T) {
	m := newTestManager(t, nil)
	near := bank.NewTrueFalse("near", true, bank.Options{})
	far := bank.NewTrueFalse("far", true, bank.Options{})
	m.AddQuestion(near)
	m.AddQuestion(far)
	far.Rating = 1600 // outside 1200 ± 200

	selected, err := m.StartSession(context.Background(), SessionOptions{Adaptive: true})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != near.ID {
		t.Errorf("adaptive selection = %v", selected)
	}
}

func TestStatistics(t *testing.T) {
	m := newTestManager(t, nil)
	qs := addQuestions(m, 4)
	ctx := context.Background()

	if _, err := m.Answer(ctx, qs[0].ID, qs[0].CorrectAnswer().ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	wrong := qs[1].Answers[1]
	if _, err := m.Answer(ctx, qs[1].ID, wrong.ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}

	stats := m.Statistics()
	if stats.TotalQuestions != 4 {
		t.Errorf("total = %d, want 4", stats.TotalQuestions)
	}
	if stats.UnseenCount != 2 {
		t.Errorf("unseen = %d, want 2", stats.UnseenCount)
	}
	if stats.TotalAttempts != 2 {
		t.Errorf("attempts = %d, want 2", stats.TotalAttempts)
	}
	if stats.OverallAccuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.OverallAccuracy)
	}
	if stats.UserLevel == "" {
		t.Error("user level empty")
	}
}

func TestForecastHorizon(t *testing.T) {
	m := newTestManager(t, nil)
	addQuestions(m, 3)

	entries := m.Forecast(7)
	if len(entries) != 7 {
		t.Fatalf("entries = %d, want 7", len(entries))
	}
}

func TestDifficultQuestions(t *testing.T) {
	m := newTestManager(t, nil)
	qs := addQuestions(m, 2)
	ctx := context.Background()

	// qs[0]: two wrong answers. qs[1]: two right.
	for i := 0; i < 2; i++ {
		if _, err := m.Answer(ctx, qs[0].ID, qs[0].Answers[1].ID, 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if _, err := m.Answer(ctx, qs[1].ID, qs[1].CorrectAnswer().ID, 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}

	hard := m.DifficultQuestions(1)
	if len(hard) != 1 || hard[0].ID != qs[0].ID {
		t.Errorf("difficult = %v, want the missed question first", hard)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m := newTestManager(t, nil)
	qs := addQuestions(m, 2)
	ctx := context.Background()
	if _, err := m.Answer(ctx, qs[0].ID, qs[0].CorrectAnswer().ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}

	var buf bytes.Buffer
	if err := m.ExportJSON(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	fresh := newTestManager(t, nil)
	if err := fresh.ImportJSON(&buf); err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(fresh.Bank().Questions) != 2 {
		t.Errorf("imported questions = %d, want 2", len(fresh.Bank().Questions))
	}
	if fresh.UserRating() != m.UserRating() {
		t.Errorf("imported rating = %v, want %v", fresh.UserRating(), m.UserRating())
	}
	got := fresh.Bank().Get(qs[0].ID)
	if got == nil || got.Schedule.TimesCorrect != 1 {
		t.Errorf("schedule state lost on import: %+v", got)
	}
}

func TestImportHonorsZeroRating(t *testing.T) {
	m := newTestManager(t, nil)
	data := `{"user_rating": 0, "bank": {"name": "b", "questions": {}}}`
	if err := m.ImportJSON(bytes.NewBufferString(data)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if m.UserRating() != 0 {
		t.Errorf("imported rating = %v, want 0", m.UserRating())
	}
}

func TestImportRejectedDuringSession(t *testing.T) {
	m := newTestManager(t, nil)
	addQuestions(m, 1)
	if _, err := m.StartSession(context.Background(), SessionOptions{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.ImportJSON(bytes.NewBufferString("{}")); !errors.Is(err, ErrSessionActive) {
		t.Errorf("err = %v, want ErrSessionActive", err)
	}
}

func TestBulkAddDeduplicates(t *testing.T) {
	m := newTestManager(t, nil)
	q1 := bank.NewTrueFalse("unique one", true, bank.Options{})
	q2 := bank.NewTrueFalse("unique two", false, bank.Options{})
	dup := bank.NewTrueFalse("unique one", true, bank.Options{})

	added := m.BulkAdd([]*bank.Question{q1, q2, dup, nil})
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if len(m.Bank().Questions) != 2 {
		t.Errorf("bank size = %d, want 2", len(m.Bank().Questions))
	}
}
