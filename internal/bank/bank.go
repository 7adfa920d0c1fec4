package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Bank is the full question collection plus session history. All fields
// are exported with json tags so the whole entity set serializes flat,
// and round-trips losslessly.
type Bank struct {
	Name      string               `json:"name"`
	CreatedAt time.Time            `json:"created_at"`
	Questions map[string]*Question `json:"questions"`
	Sessions  []*StudySession      `json:"study_sessions"`
}

// New creates an empty bank.
func New(name string, now time.Time) *Bank {
	return &Bank{
		Name:      name,
		CreatedAt: now,
		Questions: make(map[string]*Question),
	}
}

// Add inserts a question, replacing any existing question with the same id.
func (b *Bank) Add(q *Question) {
	b.Questions[q.ID] = q
}

// Remove deletes a question. Returns false if it was not present.
func (b *Bank) Remove(id string) bool {
	if _, ok := b.Questions[id]; !ok {
		return false
	}
	delete(b.Questions, id)
	return true
}

// Get returns the question with the given id, or nil.
func (b *Bank) Get(id string) *Question {
	return b.Questions[id]
}

// All returns every question, ordered by creation time then id for
// stable listings.
func (b *Bank) All() []*Question {
	out := make([]*Question, 0, len(b.Questions))
	for _, q := range b.Questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Search returns questions whose text or answer options contain the
// query, case-insensitively.
func (b *Bank) Search(query string) []*Question {
	query = strings.ToLower(query)
	var out []*Question
	for _, q := range b.All() {
		if strings.Contains(strings.ToLower(q.Text), query) {
			out = append(out, q)
			continue
		}
		for _, a := range q.Answers {
			if strings.Contains(strings.ToLower(a.Text), query) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// ByTag returns all questions carrying the tag.
func (b *Bank) ByTag(tag string) []*Question {
	var out []*Question
	for _, q := range b.All() {
		if q.HasTag(tag) {
			out = append(out, q)
		}
	}
	return out
}

// AllTags returns the sorted set of tags in use.
func (b *Bank) AllTags() []string {
	seen := make(map[string]bool)
	for _, q := range b.Questions {
		for _, t := range q.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// TagCounts returns tags with their usage counts, most used first.
func (b *Bank) TagCounts() []TagCount {
	counts := make(map[string]int)
	for _, q := range b.Questions {
		for _, t := range q.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// TagCount pairs a tag with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Encode writes the bank as indented JSON.
func (b *Bank) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return nil
}

// Decode reads a bank previously written by Encode.
func Decode(r io.Reader) (*Bank, error) {
	var b Bank
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if b.Questions == nil {
		b.Questions = make(map[string]*Question)
	}
	return &b, nil
}
