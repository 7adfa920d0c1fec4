package manager

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// exportFile is the portable JSON form of the full state.
type exportFile struct {
	ExportedAt time.Time  `json:"exported_at"`
	UserRating *float64   `json:"user_rating"`
	Bank       *bank.Bank `json:"bank"`
}

// ExportJSON writes the bank and user rating as indented JSON.
func (m *Manager) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(exportFile{
		ExportedAt: m.now(),
		UserRating: &m.userRating,
		Bank:       m.bank,
	})
	if err != nil {
		return fmt.Errorf("export bank: %w", err)
	}
	return nil
}

// ImportJSON replaces the current bank and user rating with the contents
// of an export file. Fails if a session is open.
func (m *Manager) ImportJSON(r io.Reader) error {
	if m.active != nil {
		return ErrSessionActive
	}

	var file exportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("import bank: %w", err)
	}
	if file.Bank == nil {
		return fmt.Errorf("import bank: no bank in file")
	}
	if file.Bank.Questions == nil {
		file.Bank.Questions = make(map[string]*bank.Question)
	}

	m.bank = file.Bank
	if file.UserRating != nil {
		m.userRating = *file.UserRating
	}
	return nil
}

// BulkAdd seeds and adds a batch of questions, returning how many were
// added. Questions whose text duplicates an existing one are dropped.
func (m *Manager) BulkAdd(qs []*bank.Question) int {
	existing := make(map[string]bool, len(m.bank.Questions))
	for _, q := range m.bank.Questions {
		existing[q.Text] = true
	}

	added := 0
	for _, q := range qs {
		if q == nil || existing[q.Text] {
			continue
		}
		m.AddQuestion(q)
		existing[q.Text] = true
		added++
	}
	return added
}
