// Package questionbank turns raw markdown submissions into the ordered
// question list a picking session draws from.
package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"psp.com/discussion-picker/backend/internal/submission"
)

// Question is one cleaned discussion question ready for display.
type Question struct {
	ID             string `json:"id"`
	Author         string `json:"author"`
	Body           string `json:"body"`
	Week           string `json:"week"`
	WeekLabel      string `json:"weekLabel"`
	SourceFilename string `json:"sourceFilename"`
}

// Week summarizes one week folder in the bank.
type Week struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Document is a raw markdown submission as found on disk or over HTTP.
type Document struct {
	Week     string
	Filename string
	Text     string
}

// Bank is an ordered, read-only collection of questions.
type Bank struct {
	Version   string     `json:"version"`
	Generated string     `json:"generated"` // ISO timestamp
	Items     []Question `json:"questions"`
}

const bankVersion = "1.0"

// ErrEmptyBank is returned by loaders that found no usable questions.
var ErrEmptyBank = errors.New("question bank is empty")

// NewQuestion cleans one submission and derives its author and week label.
func NewQuestion(doc Document) Question {
	return Question{
		ID:             uuid.NewString(),
		Author:         submission.ExtractAuthor(doc.Filename, doc.Text),
		Body:           submission.CleanBody(doc.Text),
		Week:           doc.Week,
		WeekLabel:      submission.WeekLabel(doc.Week),
		SourceFilename: doc.Filename,
	}
}

// FromDocuments builds a bank from raw submissions, ordered by week then
// filename. README files and submissions with nothing left after cleaning
// are skipped.
func FromDocuments(docs []Document) (*Bank, error) {
	sorted := append([]Document(nil), docs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Week != sorted[j].Week {
			return sorted[i].Week < sorted[j].Week
		}
		return sorted[i].Filename < sorted[j].Filename
	})

	b := &Bank{Version: bankVersion, Generated: time.Now().UTC().Format(time.RFC3339)}
	for _, doc := range sorted {
		if isReadme(doc.Filename) {
			continue
		}
		q := NewQuestion(doc)
		if q.Body == "" {
			continue
		}
		b.Items = append(b.Items, q)
	}
	if len(b.Items) == 0 {
		return nil, ErrEmptyBank
	}
	return b, nil
}

// LoadDir reads root/<week>/<name>.md from fsys. Files directly under root
// and non-markdown files are ignored.
func LoadDir(fsys fs.FS, root string) (*Bank, error) {
	weeks, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read questions dir: %w", err)
	}
	var docs []Document
	for _, w := range weeks {
		if !w.IsDir() || strings.HasPrefix(w.Name(), ".") {
			continue
		}
		weekDir := path.Join(root, w.Name())
		files, err := fs.ReadDir(fsys, weekDir)
		if err != nil {
			return nil, fmt.Errorf("read week %s: %w", w.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
				continue
			}
			data, err := fs.ReadFile(fsys, path.Join(weekDir, f.Name()))
			if err != nil {
				return nil, fmt.Errorf("read %s/%s: %w", w.Name(), f.Name(), err)
			}
			docs = append(docs, Document{Week: w.Name(), Filename: f.Name(), Text: string(data)})
		}
	}
	return FromDocuments(docs)
}

// LoadJSON reads a bank previously written by SaveJSON. Questions with a body
// already seen are dropped, and missing IDs or labels are filled in.
func LoadJSON(p string) (*Bank, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	var raw Bank
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	b := &Bank{Version: raw.Version, Generated: raw.Generated}
	if b.Version == "" {
		b.Version = bankVersion
	}
	seen := make(map[string]struct{}, len(raw.Items))
	for _, q := range raw.Items {
		if _, dup := seen[q.Body]; dup || strings.TrimSpace(q.Body) == "" {
			continue
		}
		seen[q.Body] = struct{}{}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.WeekLabel == "" {
			q.WeekLabel = submission.WeekLabel(q.Week)
		}
		b.Items = append(b.Items, q)
	}
	if len(b.Items) == 0 {
		return nil, ErrEmptyBank
	}
	return b, nil
}

// SaveJSON writes the bank as indented JSON.
func (b *Bank) SaveJSON(p string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int { return len(b.Items) }

// Questions returns the questions for the given week IDs, in bank order.
// With no weeks it returns every question. The slice is a copy.
func (b *Bank) Questions(weeks ...string) []Question {
	if len(weeks) == 0 {
		return append([]Question(nil), b.Items...)
	}
	want := make(map[string]struct{}, len(weeks))
	for _, w := range weeks {
		want[w] = struct{}{}
	}
	var out []Question
	for _, q := range b.Items {
		if _, ok := want[q.Week]; ok {
			out = append(out, q)
		}
	}
	return out
}

// HasWeek reports whether any question belongs to week.
func (b *Bank) HasWeek(week string) bool {
	for _, q := range b.Items {
		if q.Week == week {
			return true
		}
	}
	return false
}

// Weeks lists the weeks present in the bank, sorted by ID.
func (b *Bank) Weeks() []Week {
	counts := make(map[string]int)
	for _, q := range b.Items {
		counts[q.Week]++
	}
	out := make([]Week, 0, len(counts))
	for id, n := range counts {
		out = append(out, Week{ID: id, Label: submission.WeekLabel(id), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func isReadme(name string) bool {
	return strings.EqualFold(name, "README.md")
}
