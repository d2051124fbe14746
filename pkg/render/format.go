// Package render projects record sets into terminal output formats.
package render

// Format identifies an output format.
type Format string

const (
	// FormatText is width-aligned plain text, the default.
	FormatText Format = "text"

	// FormatCSV is RFC 4180 comma-separated values.
	FormatCSV Format = "csv"

	// FormatJSON is pretty-printed JSON with stable key order.
	FormatJSON Format = "json"

	// FormatYAML is YAML with stable key order.
	FormatYAML Format = "yaml"

	// FormatTable is a bordered human-readable table.
	FormatTable Format = "table"
)

var formats = []Format{FormatText, FormatCSV, FormatJSON, FormatYAML, FormatTable}

// IsUnknown reports whether f is not a supported output format.
func (f Format) IsUnknown() bool {
	for _, known := range formats {
		if f == known {
			return false
		}
	}
	return true
}

func (f Format) String() string {
	return string(f)
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// machineReadable reports whether the format is meant for further processing,
// which suppresses the trailing feedback footer.
func (f Format) machineReadable() bool {
	return f != FormatText
}
