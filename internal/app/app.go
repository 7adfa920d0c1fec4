package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/manager"
	"github.com/haxx0rman/qBank/internal/ui/components"
	"github.com/haxx0rman/qBank/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseQuitConfirm
	phaseSummary
)

type sessionStartedMsg struct {
	Questions []*bank.Question
	Err       error
}

// StudyModel is the root Bubble Tea model for a study session.
type StudyModel struct {
	mgr  *manager.Manager
	opts manager.SessionOptions

	questions []*bank.Question
	index     int
	phase     phase
	errMsg    string

	// per-question input state
	mc            components.MultiChoice
	input         components.TextInput
	mcActive      bool
	choiceOrder   []int // display order into Answers
	questionStart time.Time

	report  *manager.AnswerReport
	skipped bool

	correct      int
	wrong        int
	skippedCount int
	summary      *bank.StudySession

	width  int
	height int
}

func newStudyModel(mgr *manager.Manager, opts manager.SessionOptions) StudyModel {
	return StudyModel{mgr: mgr, opts: opts, phase: phaseLoading}
}

func (m StudyModel) Init() tea.Cmd {
	return func() tea.Msg {
		qs, err := m.mgr.StartSession(context.Background(), m.opts)
		return sessionStartedMsg{Questions: qs, Err: err}
	}
}

func (m StudyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionStartedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		if len(msg.Questions) == 0 {
			m.errMsg = "nothing is due for review"
			return m, nil
		}
		m.questions = msg.Questions
		m.index = 0
		return m.presentQuestion()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion && !m.mcActive {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// presentQuestion sets up input state for the current question.
func (m StudyModel) presentQuestion() (tea.Model, tea.Cmd) {
	q := m.questions[m.index]
	m.phase = phaseQuestion
	m.report = nil
	m.skipped = false
	m.questionStart = time.Now()

	if q.Kind == bank.KindShortAnswer {
		m.mcActive = false
		m.input = components.NewTextInput("Type your answer...", 120)
		return m, m.input.Init()
	}

	m.mcActive = true
	m.choiceOrder = rand.Perm(len(q.Answers))
	options := make([]string, len(q.Answers))
	correctIdx := 0
	for display, orig := range m.choiceOrder {
		options[display] = q.Answers[orig].Text
		if q.Answers[orig].Correct {
			correctIdx = display
		}
	}
	m.mc = components.NewMultiChoice(q.Text, options, correctIdx)
	return m, nil
}

func (m StudyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m.endSession()
	}

	if m.errMsg != "" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLoading:
		return m, nil

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return m.endSession()
		case "n", "N", "esc":
			m.phase = phaseQuestion
		}
		return m, nil

	case phaseFeedback:
		return m.nextQuestion()

	case phaseSummary:
		return m, tea.Quit

	case phaseQuestion:
		switch key {
		case "esc":
			m.phase = phaseQuitConfirm
			return m, nil
		case "ctrl+s":
			return m.skipQuestion()
		case "enter":
			return m.submitAnswer()
		}

		if m.mcActive {
			switch key {
			case "1", "2", "3", "4":
				idx := int(key[0] - '1')
				if idx < len(m.mc.Options) {
					m.mc.Selected = idx
					return m.submitAnswer()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.mc, cmd = m.mc.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m StudyModel) submitAnswer() (tea.Model, tea.Cmd) {
	q := m.questions[m.index]
	elapsed := time.Since(m.questionStart).Seconds()

	var report *manager.AnswerReport
	var err error

	if m.mcActive {
		chosen := q.Answers[m.choiceOrder[m.mc.Selected]]
		m.mc.Submitted = true
		m.mc.ChosenIndex = m.mc.Selected
		report, err = m.mgr.Answer(context.Background(), q.ID, chosen.ID, elapsed)
	} else {
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		report, err = m.mgr.AnswerText(context.Background(), q.ID, text, elapsed)
		if report != nil {
			m.input.Submit(report.Correct)
		}
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	if report.Correct {
		m.correct++
	} else {
		m.wrong++
	}

	m.report = report
	m.phase = phaseFeedback
	return m, nil
}

func (m StudyModel) skipQuestion() (tea.Model, tea.Cmd) {
	q := m.questions[m.index]
	if err := m.mgr.Skip(context.Background(), q.ID); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.skippedCount++
	m.skipped = true
	m.report = nil
	m.phase = phaseFeedback
	return m, nil
}

func (m StudyModel) nextQuestion() (tea.Model, tea.Cmd) {
	if m.index+1 >= len(m.questions) {
		return m.endSession()
	}
	m.index++
	return m.presentQuestion()
}

func (m StudyModel) endSession() (tea.Model, tea.Cmd) {
	if m.mgr.ActiveSession() == nil {
		return m, tea.Quit
	}
	session, err := m.mgr.EndSession(context.Background())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.summary = session
	m.phase = phaseSummary
	return m, nil
}

// Run starts the study TUI and blocks until the session ends.
func Run(mgr *manager.Manager, opts manager.SessionOptions) error {
	p := tea.NewProgram(newStudyModel(mgr, opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

func (m StudyModel) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+S", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}
