package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/stackwise/invctl/pkg/record"
)

// Options control the decorations around the projected values.
type Options struct {
	// Header emits a field-name header before rows (text, csv, table).
	Header bool

	// Labels prefixes single-record text output with "field: ".
	Labels bool

	// Feedback appends the "N objects" footer after text sequences.
	Feedback bool
}

// Writer renders records to an output stream in one format. A Writer carries
// the Profiles used for column widths, so field-spec width overrides made
// earlier in the run are visible here.
type Writer struct {
	out      io.Writer
	format   Format
	profiles *record.Profiles
	opts     Options
}

// NewWriter creates a Writer for the given format and destination.
// Machine-readable formats never carry the feedback footer, whatever the
// caller asked for.
func NewWriter(format Format, profiles *record.Profiles, out io.Writer, opts Options) *Writer {
	if format.machineReadable() {
		opts.Feedback = false
	}
	return &Writer{
		out:      out,
		format:   format,
		profiles: profiles,
		opts:     opts,
	}
}

// WriteRecords renders a record sequence with the given resolved field order.
func (w *Writer) WriteRecords(kind record.Kind, fields []string, records []record.Record) error {
	switch w.format {
	case FormatCSV:
		return w.writeCSV(fields, records)
	case FormatJSON:
		return w.writeJSON(fields, records)
	case FormatYAML:
		return w.writeYAML(fields, records)
	case FormatTable:
		return w.writeTable(fields, records)
	default:
		return w.writeText(kind, fields, records)
	}
}

// WriteRecord renders a single record, show-style: the requested fields that
// are present come first, then any remaining present fields so the output
// reveals everything the record carries.
func (w *Writer) WriteRecord(kind record.Kind, fields []string, rec record.Record) error {
	merged := mergeFields(fields, rec)

	switch w.format {
	case FormatCSV:
		return w.writeCSV(merged, []record.Record{rec})
	case FormatJSON:
		return w.writeJSONOne(merged, rec)
	case FormatYAML:
		return w.writeYAMLOne(merged, rec)
	case FormatTable:
		return w.writeTable(merged, []record.Record{rec})
	default:
		return w.writeTextOne(merged, rec)
	}
}

// mergeFields intersects the requested fields with those present on the
// record, then appends the remaining present fields in sorted order.
func mergeFields(fields []string, rec record.Record) []string {
	merged := make([]string, 0, len(rec))
	seen := make(map[string]bool, len(rec))

	for _, f := range fields {
		if rec.Has(f) && !seen[f] {
			merged = append(merged, f)
			seen[f] = true
		}
	}
	for _, f := range rec.PresentFields() {
		if !seen[f] {
			merged = append(merged, f)
			seen[f] = true
		}
	}
	return merged
}

func (w *Writer) writeText(kind record.Kind, fields []string, records []record.Record) error {
	if w.opts.Header {
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = pad(f, w.profiles.Width(kind, f))
		}
		if err := w.writeLine(cells); err != nil {
			return err
		}
	}

	for _, rec := range records {
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = pad(rec.String(f), w.profiles.Width(kind, f))
		}
		if err := w.writeLine(cells); err != nil {
			return err
		}
	}

	if w.opts.Feedback {
		if _, err := fmt.Fprintf(w.out, "%d objects\n", len(records)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeTextOne(fields []string, rec record.Record) error {
	for _, f := range fields {
		var err error
		if w.opts.Labels {
			_, err = fmt.Fprintf(w.out, "%s: %s\n", f, rec.String(f))
		} else {
			_, err = fmt.Fprintf(w.out, "%s\n", rec.String(f))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeLine(cells []string) error {
	line := strings.TrimRight(strings.Join(cells, " "), " ")
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// pad left-justifies s in a cell of the given width, counted in runes.
// Values longer than the width are not truncated.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func (w *Writer) writeCSV(fields []string, records []record.Record) error {
	cw := csv.NewWriter(w.out)

	if w.opts.Header {
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	for _, rec := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = rec.String(f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) writeJSON(fields []string, records []record.Record) error {
	docs := make([]orderedRecord, len(records))
	for i, rec := range records {
		docs[i] = orderedRecord{fields: fields, rec: rec}
	}
	return w.encodeJSON(docs)
}

func (w *Writer) writeJSONOne(fields []string, rec record.Record) error {
	return w.encodeJSON(orderedRecord{fields: fields, rec: rec})
}

func (w *Writer) encodeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to json: %w", err)
	}
	_, err = fmt.Fprintln(w.out, string(out))
	return err
}

func (w *Writer) writeYAML(fields []string, records []record.Record) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range records {
		node, err := yamlMapping(fields, rec)
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, node)
	}
	return w.encodeYAML(seq)
}

func (w *Writer) writeYAMLOne(fields []string, rec record.Record) error {
	node, err := yamlMapping(fields, rec)
	if err != nil {
		return err
	}
	return w.encodeYAML(node)
}

func (w *Writer) encodeYAML(node *yaml.Node) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	return enc.Close()
}

// yamlMapping builds a mapping node restricted to the present fields, keeping
// the resolved field order. Absent fields are omitted, matching JSON.
func yamlMapping(fields []string, rec record.Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		if !rec.Has(f) {
			continue
		}

		key := &yaml.Node{}
		if err := key.Encode(f); err != nil {
			return nil, err
		}
		val := &yaml.Node{}
		if err := val.Encode(rec[f]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func (w *Writer) writeTable(fields []string, records []record.Record) error {
	t := table.NewWriter()
	t.SetOutputMirror(w.out)

	if w.opts.Header {
		header := make(table.Row, len(fields))
		for i, f := range fields {
			header[i] = strings.ToUpper(f)
		}
		t.AppendHeader(header)
	}
	for _, rec := range records {
		row := make(table.Row, len(fields))
		for i, f := range fields {
			row[i] = rec.String(f)
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// orderedRecord marshals a record as a JSON object whose key order equals the
// resolved field order. Absent fields are omitted rather than emitted null.
type orderedRecord struct {
	fields []string
	rec    record.Record
}

func (o orderedRecord) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')

	first := true
	for _, f := range o.fields {
		if !o.rec.Has(f) {
			continue
		}

		if !first {
			b.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.rec[f])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}

	b.WriteByte('}')
	return []byte(b.String()), nil
}
