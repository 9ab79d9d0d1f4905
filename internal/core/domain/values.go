package domain

// NamedValue is a secret or configuration entry after decoding.
type NamedValue struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// EnvEntry is a plain environment override. It is escaped on emission but
// never filtered or redacted.
type EnvEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// RawEntry is one member of a secrets, variables or overrides collection as
// received from the environment.
type RawEntry struct {
	Key   string
	Value string
}

// RawCollection keeps the entries in the order they appeared in the source
// JSON object.
type RawCollection []RawEntry

// ChartValue is the JSON payload carried by every secret and variable.
type ChartValue struct {
	Chart string `json:"chart"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Source names the collection an entry was selected from.
type Source string

const (
	SourceSecrets    Source = "secret"
	SourceVariables  Source = "variable"
	SourceCollection Source = "collection"
)

// Redacted returns a copy of values with every value replaced by the
// redaction placeholder.
func Redacted(values []NamedValue) []NamedValue {
	redacted := make([]NamedValue, len(values))
	for i, v := range values {
		redacted[i] = NamedValue{Key: v.Key, Value: RedactionPlaceholder}
	}
	return redacted
}
