// file: radixmap/dataset/dataset.go
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/maatini/radixmap/radix"
	"github.com/maatini/radixmap/store"
)

// Record is one raw (key, value) pair as it appears in a dataset file.
// Both fields are strings; LoadJSON decodes into it via weakly typed
// mapstructure, so scalar JSON values such as numbers or booleans are
// converted to strings, while object or array values fail to decode.
type Record struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// LoadJSON reads a JSON array of loosely-typed objects from path and
// decodes each into a Record via mapstructure, tolerating extra fields
// and numeric/string value mismatches that encoding/json alone would
// reject.
func LoadJSON(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	records := make([]Record, len(items))
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &records,
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: build decoder: %w", err)
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, err)
	}
	return records, nil
}

// ToEntries adapts Records into the Entry shape New requires.
func ToEntries(records []Record) []radix.Entry[radix.StringKey, string] {
	entries := make([]radix.Entry[radix.StringKey, string], len(records))
	for i, r := range records {
		entries[i] = radix.Entry[radix.StringKey, string]{
			Key:   radix.StringKey(r.Key),
			Value: r.Value,
		}
	}
	return entries
}

// ToStoreRecords adapts Records into store.Record for persistence.
func ToStoreRecords(records []Record) []store.Record {
	out := make([]store.Record, len(records))
	for i, r := range records {
		out[i] = store.Record{Key: []byte(r.Key), Value: []byte(r.Value)}
	}
	return out
}

// FromStoreRecords adapts persisted store.Record back into Record.
func FromStoreRecords(records []store.Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = Record{Key: string(r.Key), Value: string(r.Value)}
	}
	return out
}
