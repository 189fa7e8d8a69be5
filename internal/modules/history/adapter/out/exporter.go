package out

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"flowstreak/internal/modules/history/domain"
	historyout "flowstreak/internal/modules/history/port/out"
)

type exportEntry struct {
	Date    string `json:"date" yaml:"date"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

type exportDocument struct {
	Key     string        `json:"key" yaml:"key"`
	Entries []exportEntry `json:"entries" yaml:"entries"`
}

type FileExporter struct{}

func NewExporter() historyout.Exporter {
	return FileExporter{}
}

func (FileExporter) Export(history domain.History, format string) ([]byte, error) {
	doc := exportDocument{Key: domain.HistoryKey, Entries: make([]exportEntry, 0, len(history))}
	for date, minutes := range history {
		doc.Entries = append(doc.Entries, exportEntry{Date: date, Minutes: minutes})
	}
	sort.Slice(doc.Entries, func(i, j int) bool { return doc.Entries[i].Date < doc.Entries[j].Date })

	switch format {
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml export: %w", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json export: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
