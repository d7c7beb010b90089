package output

import "strings"

// OutputFormat specifies how read-only commands print results.
type OutputFormat string

const (
	// FormatTable prints a styled table.
	FormatTable OutputFormat = "table"

	// FormatJSON prints JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s case-insensitively. The second result is false
// when s names no known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
