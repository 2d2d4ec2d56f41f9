// Package staging is the upload staging list: the ordered set of files the
// user has selected but not yet sent to the upload collaborator. Rows live
// in memory only and do not survive the process; the list is cleared
// implicitly by sample loading and by nothing else.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload cap.
const MaxFileSize = 50 * 1024 * 1024 // 50 MiB

// allowedExtensions is the fixed allow-set for staged files.
var allowedExtensions = map[string]struct{}{
	".csv":  {},
	".xlsx": {},
	".xls":  {},
	".docx": {},
	".pdf":  {},
	".txt":  {},
}

// Candidate is a file handle offered for staging, before validation.
// Open must return a fresh reader over the file's content each call.
type Candidate struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// StagedFile is an accepted row of the staging list.
type StagedFile struct {
	ID        string
	Name      string
	Size      int64
	Extension string // lower-cased, with leading dot
	Open      func() (io.ReadCloser, error)
}

// Rejection describes a candidate dropped by validation. The reason is the
// user-visible message.
type Rejection struct {
	Name   string
	Reason string
}

// FromFile builds a Candidate backed by a file on disk.
func FromFile(path string) (Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Candidate{}, fmt.Errorf("%s is a directory", path)
	}
	return Candidate{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// List is the ordered staging list.
type List struct {
	rows        []StagedFile
	sampleCount int
}

func NewList() *List {
	return &List{}
}

// AddFiles validates each candidate and appends the accepted ones in order.
// Rejected candidates are reported with a user-visible reason and never
// change the list length. When at least one candidate is accepted while
// fabricated sample rows are present, the first sampleCount rows are
// evicted first. The rule removes the oldest rows, not the sample rows
// specifically.
func (l *List) AddFiles(candidates []Candidate) (accepted []StagedFile, rejected []Rejection) {
	for _, c := range candidates {
		if reason, ok := l.validate(c); !ok {
			rejected = append(rejected, Rejection{Name: c.Name, Reason: reason})
			continue
		}

		if l.sampleCount > 0 {
			l.RemoveFirst(l.sampleCount)
			l.sampleCount = 0
		}

		row := StagedFile{
			ID:        uuid.NewString(),
			Name:      c.Name,
			Size:      c.Size,
			Extension: strings.ToLower(filepath.Ext(c.Name)),
			Open:      c.Open,
		}
		l.rows = append(l.rows, row)
		accepted = append(accepted, row)
	}
	return accepted, rejected
}

func (l *List) validate(c Candidate) (reason string, ok bool) {
	ext := strings.ToLower(filepath.Ext(c.Name))
	if _, allowed := allowedExtensions[ext]; !allowed {
		return fmt.Sprintf("File type %s not allowed. Allowed: %s", ext, allowedList()), false
	}
	if c.Size > MaxFileSize {
		return fmt.Sprintf("File %s exceeds 50MB limit", c.Name), false
	}
	return "", true
}

func allowedList() string {
	exts := make([]string, 0, len(allowedExtensions))
	for e := range allowedExtensions {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// RemoveFirst drops the first n rows. n larger than the list removes
// everything.
func (l *List) RemoveFirst(n int) {
	if n <= 0 {
		return
	}
	if n >= len(l.rows) {
		l.rows = nil
		return
	}
	l.rows = l.rows[n:]
}

// Files returns a copy of the current rows in staging order.
func (l *List) Files() []StagedFile {
	out := make([]StagedFile, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len is the current number of staged rows.
func (l *List) Len() int {
	return len(l.rows)
}
