package staging

import (
	"bytes"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Fabricated demo rows staged by the "load sample data" action.
var sampleFiles = []struct {
	name string
	size int64
}{
	{name: "clinical_trial_data.csv", size: 2_400_000},
	{name: "study_protocol.docx", size: 156_000},
}

// LoadSamples wipes the list and stages the fabricated sample rows with
// in-memory content. This is the only action that clears the list
// implicitly.
func (l *List) LoadSamples() []StagedFile {
	l.rows = nil
	l.sampleCount = 0

	for _, s := range sampleFiles {
		size := s.size
		l.rows = append(l.rows, StagedFile{
			ID:        uuid.NewString(),
			Name:      s.name,
			Size:      size,
			Extension: strings.ToLower(s.name[strings.LastIndex(s.name, "."):]),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(sampleContent(size))), nil
			},
		})
		l.sampleCount++
	}
	return l.Files()
}

// SampleCount reports how many of the current rows came from the sample
// loader and are still pending eviction by real files.
func (l *List) SampleCount() int {
	return l.sampleCount
}

// sampleContent fabricates deterministic filler of the requested size so the
// kickoff sequence can build a real multipart body from sample rows.
func sampleContent(size int64) []byte {
	const line = "subject_id,visit,measurement,value\n"
	buf := make([]byte, 0, size)
	for int64(len(buf)) < size {
		buf = append(buf, line...)
	}
	return buf[:size]
}
