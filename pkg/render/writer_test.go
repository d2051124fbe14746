package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackwise/invctl/pkg/record"
)

func testProfiles(t *testing.T) *record.Profiles {
	t.Helper()
	p, err := record.DefaultProfiles()
	require.NoError(t, err)
	return p
}

func sampleRecords() []record.Record {
	return []record.Record{
		{"name": "web01", "environment": "prod", "status": "up"},
		{"name": "db01", "environment": "prod", "status": "down"},
	}
}

func TestWriteText_AlignmentAndFooter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, testProfiles(t), &buf, Options{Header: true, Feedback: true})

	fields := []string{"name", "status"}
	err := w.WriteRecords(record.KindSystem, fields, sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// Header and rows align on the configured name width (24).
	assert.Equal(t, "name", strings.Fields(lines[0])[0])
	assert.Equal(t, strings.Index(lines[0], "status"), strings.Index(lines[1], "up"))
	assert.Equal(t, "2 objects", lines[3])
}

func TestWriteText_NoHeaderNoFooter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, testProfiles(t), &buf, Options{})

	err := w.WriteRecords(record.KindSystem, []string{"name"}, sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"web01", "db01"}, lines)
}

func TestWriteText_MultibyteAlignment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, testProfiles(t), &buf, Options{})

	recs := []record.Record{
		{"name": "münchen-db01", "status": "up"},
		{"name": "ascii-db02", "status": "up"},
	}
	err := w.WriteRecords(record.KindSystem, []string{"name", "status"}, recs)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// Columns align on rune count, not byte count.
	assert.Equal(t, []rune(lines[0])[24:], []rune(lines[1])[24:])
}

func TestWriteText_MissingFieldRendersEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, testProfiles(t), &buf, Options{})

	recs := []record.Record{{"name": "web01"}}
	err := w.WriteRecords(record.KindSystem, []string{"name", "owner"}, recs)
	require.NoError(t, err)
	assert.Equal(t, "web01\n", buf.String())
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, testProfiles(t), &buf, Options{Header: true})

	recs := []record.Record{
		{"name": "web01", "owner": `team "core", platform`},
		{"name": "db01", "owner": "line1\nline2"},
	}
	fields := []string{"name", "owner"}
	require.NoError(t, w.WriteRecords(record.KindSystem, fields, recs))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, fields, rows[0])
	for i, rec := range recs {
		for j, f := range fields {
			assert.Equal(t, rec.String(f), rows[i+1][j])
		}
	}
}

func TestWriteCSV_SuppressesFeedback(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, testProfiles(t), &buf, Options{Feedback: true})

	require.NoError(t, w.WriteRecords(record.KindSystem, []string{"name"}, sampleRecords()))
	assert.NotContains(t, buf.String(), "objects")
}

func TestWriteJSON_StableKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, testProfiles(t), &buf, Options{})

	recs := []record.Record{{"status": "up", "name": "web01", "environment": "prod"}}
	require.NoError(t, w.WriteRecords(record.KindSystem, []string{"name", "status"}, recs))

	out := buf.String()
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"status"`))
	assert.NotContains(t, out, "environment")

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "web01", parsed[0]["name"])
}

func TestWriteJSON_AbsentFieldOmitted(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, testProfiles(t), &buf, Options{})

	recs := []record.Record{{"name": "web01", "owner": nil}}
	require.NoError(t, w.WriteRecords(record.KindSystem, []string{"name", "owner"}, recs))

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	_, ok := parsed[0]["owner"]
	assert.False(t, ok, "absent field should be omitted, not null")
}

func TestWriteRecord_LabelsToggleSameLineCount(t *testing.T) {
	rec := record.Record{"name": "web01", "status": "up", "os": "ubuntu"}
	fields := []string{"name", "status"}

	var labeled, bare bytes.Buffer
	require.NoError(t, NewWriter(FormatText, testProfiles(t), &labeled, Options{Labels: true}).
		WriteRecord(record.KindSystem, fields, rec))
	require.NoError(t, NewWriter(FormatText, testProfiles(t), &bare, Options{}).
		WriteRecord(record.KindSystem, fields, rec))

	labeledLines := strings.Split(strings.TrimRight(labeled.String(), "\n"), "\n")
	bareLines := strings.Split(strings.TrimRight(bare.String(), "\n"), "\n")
	assert.Equal(t, len(labeledLines), len(bareLines))

	assert.Equal(t, "name: web01", labeledLines[0])
	assert.Equal(t, "web01", bareLines[0])
}

func TestWriteRecord_RevealsExtraFields(t *testing.T) {
	rec := record.Record{"name": "web01", "status": "up", "rack": "r12", "owner": "core"}

	var buf bytes.Buffer
	w := NewWriter(FormatText, testProfiles(t), &buf, Options{Labels: true})
	require.NoError(t, w.WriteRecord(record.KindSystem, []string{"name", "missing", "status"}, rec))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// Requested present fields first, then the rest sorted; the requested
	// field absent from the record is dropped.
	assert.Equal(t, "name: web01", lines[0])
	assert.Equal(t, "status: up", lines[1])
	assert.Equal(t, "owner: core", lines[2])
	assert.Equal(t, "rack: r12", lines[3])
}

func TestWriteRecord_JSONSingleObject(t *testing.T) {
	rec := record.Record{"name": "web01", "status": "up"}

	var buf bytes.Buffer
	w := NewWriter(FormatJSON, testProfiles(t), &buf, Options{})
	require.NoError(t, w.WriteRecord(record.KindSystem, []string{"name"}, rec))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "web01", parsed["name"])
	assert.Equal(t, "up", parsed["status"])
}

func TestWriteYAML_SequenceDecodes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, testProfiles(t), &buf, Options{})

	require.NoError(t, w.WriteRecords(record.KindSystem, []string{"name", "status"}, sampleRecords()))

	assert.Contains(t, buf.String(), "name: web01")
	assert.Contains(t, buf.String(), "status: down")
}

func TestWriteTable_ContainsHeaderAndCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, testProfiles(t), &buf, Options{Header: true})

	require.NoError(t, w.WriteRecords(record.KindSystem, []string{"name", "status"}, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "web01")
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON, FormatYAML, FormatTable} {
		assert.False(t, f.IsUnknown(), "format %q", f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}
