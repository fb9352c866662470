package store

import (
	"encoding/json"
	"os"

	"github.com/san-kum/rootlab/internal/trace"
)

type ExportData struct {
	RunMetadata
	Points []trace.Point `json:"trace"`
}

func ExportJSON(path string, meta *RunMetadata, points []trace.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Points: points})
}

func ExportJSONStdout(meta *RunMetadata, points []trace.Point) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Points: points})
}
