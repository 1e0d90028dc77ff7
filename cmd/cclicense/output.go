package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	cclicense "github.com/albertocavalcante/go-cclicense"
)

// record is the structured output row for a single license.
type record struct {
	URL          string `json:"url" yaml:"url"`
	Short        string `json:"short" yaml:"short"`
	Rights       string `json:"rights" yaml:"rights"`
	RightsFull   string `json:"rights_full" yaml:"rights_full"`
	Version      string `json:"version" yaml:"version"`
	Nomenclature string `json:"nomenclature" yaml:"nomenclature"`
	Canonical    string `json:"canonical" yaml:"canonical"`
}

func newRecord(source string, l cclicense.License) record {
	return record{
		URL:          source,
		Short:        l.ShortForm(),
		Rights:       l.RightsAbbreviation(),
		RightsFull:   l.RightsFullText(),
		Version:      l.VersionText(),
		Nomenclature: l.Nomenclature().String(),
		Canonical:    l.String(),
	}
}

// emit writes records in the requested format. Text prints one canonical
// sentence per line; json and yaml print the full records.
func emit(w io.Writer, format string, records []record) error {
	switch format {
	case "text":
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.Canonical); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		return yaml.NewEncoder(w).Encode(records)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}
