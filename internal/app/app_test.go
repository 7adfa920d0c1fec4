package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/manager"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testManager(t *testing.T) *manager.Manager {
	t.Helper()

	mgr, err := manager.New(manager.Options{
		Now: func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mgr.AddQuestion(bank.NewMultipleChoice(
		"Which planet is closest to the sun?",
		"Mercury",
		[]string{"Venus", "Mars", "Jupiter"},
		bank.Options{Tags: []string{"astronomy"}},
	))
	mgr.AddQuestion(bank.NewShortAnswer(
		"What is the capital of France?",
		[]string{"Paris"},
		bank.Options{Tags: []string{"geography"}},
	))
	return mgr
}

// startedModel runs the session-start command and feeds the result in.
func startedModel(t *testing.T, mgr *manager.Manager) StudyModel {
	t.Helper()

	m := newStudyModel(mgr, manager.SessionOptions{})
	msg := m.Init()()
	started, ok := msg.(sessionStartedMsg)
	if !ok {
		t.Fatalf("Init msg = %T, want sessionStartedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("StartSession: %v", started.Err)
	}

	next, _ := m.Update(started)
	sm := next.(StudyModel)

	next, _ = sm.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	return next.(StudyModel)
}

func TestStudyModel_StartsOnQuestion(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want phaseQuestion", m.phase)
	}
	if len(m.questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(m.questions))
	}
	// Rendering must not panic once a size is known.
	_ = m.View()
}

func TestStudyModel_NoDueQuestions(t *testing.T) {
	mgr, err := manager.New(manager.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m := newStudyModel(mgr, manager.SessionOptions{})
	msg := m.Init()()
	next, _ := m.Update(msg)
	sm := next.(StudyModel)

	if sm.errMsg == "" {
		t.Error("expected an error message for an empty bank")
	}
}

func TestStudyModel_AnswerMultipleChoice(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	// Find a multiple-choice question at the front of the queue.
	if m.questions[m.index].Kind != bank.KindMultipleChoice {
		next, _ := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
		m = next.(StudyModel)
		next, _ = m.Update(keyPress(' '))
		m = next.(StudyModel)
	}

	q := m.questions[m.index]
	correct := q.CorrectAnswer()

	// Point the selector at the correct choice and submit.
	for display, orig := range m.choiceOrder {
		if q.Answers[orig].ID == correct.ID {
			m.mc.Selected = display
		}
	}
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(StudyModel)

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want phaseFeedback", m.phase)
	}
	if m.report == nil || !m.report.Correct {
		t.Fatal("expected a correct answer report")
	}
	if m.correct != 1 {
		t.Errorf("correct = %d, want 1", m.correct)
	}
}

func TestStudyModel_AnswerShortAnswer(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	for m.questions[m.index].Kind != bank.KindShortAnswer {
		next, _ := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
		m = next.(StudyModel)
		next, _ = m.Update(keyPress(' '))
		m = next.(StudyModel)
	}

	m.input.Model.SetValue("paris")
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(StudyModel)

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want phaseFeedback", m.phase)
	}
	if m.report == nil || !m.report.Correct {
		t.Fatal("expected fuzzy match to accept the answer")
	}
}

func TestStudyModel_SkipAndAdvance(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	next, _ := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	m = next.(StudyModel)
	if m.phase != phaseFeedback || !m.skipped {
		t.Fatal("expected skip feedback")
	}
	if m.skippedCount != 1 {
		t.Errorf("skippedCount = %d, want 1", m.skippedCount)
	}

	next, _ = m.Update(keyPress(' '))
	m = next.(StudyModel)
	if m.index != 1 {
		t.Errorf("index = %d, want 1", m.index)
	}
}

func TestStudyModel_QuitConfirm(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	next, _ := m.Update(specialKey(tea.KeyEscape))
	m = next.(StudyModel)
	if m.phase != phaseQuitConfirm {
		t.Fatalf("phase = %d, want phaseQuitConfirm", m.phase)
	}

	next, _ = m.Update(keyPress('n'))
	m = next.(StudyModel)
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want phaseQuestion after N", m.phase)
	}

	next, _ = m.Update(specialKey(tea.KeyEscape))
	m = next.(StudyModel)
	next, _ = m.Update(keyPress('y'))
	m = next.(StudyModel)
	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want phaseSummary after Y", m.phase)
	}
	if mgr.ActiveSession() != nil {
		t.Error("expected session to be closed")
	}
}

func TestStudyModel_FullRunEndsInSummary(t *testing.T) {
	mgr := testManager(t)
	m := startedModel(t, mgr)

	for i := 0; i < len(m.questions); i++ {
		next, _ := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
		m = next.(StudyModel)
		next, _ = m.Update(keyPress(' '))
		m = next.(StudyModel)
	}

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want phaseSummary", m.phase)
	}
	if m.summary == nil {
		t.Fatal("expected a session summary")
	}
	if got := len(m.summary.Results); got != 2 {
		t.Errorf("recorded results = %d, want 2", got)
	}
}
