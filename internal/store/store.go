// Package store persists solver runs under a base directory, one
// subdirectory per run holding metadata.json and trace.csv. Iterates are
// stored as strings, so big-float runs round-trip at full precision.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rootlab/internal/trace"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Function   string    `json:"function"`
	Method     string    `json:"method"`
	Backend    string    `json:"backend"`
	Prec       uint      `json:"prec,omitempty"`
	X0         string    `json:"x0"`
	Steps      int       `json:"steps"`
	Timestamp  time.Time `json:"timestamp"`
	Root       string    `json:"root"`
	FinalLog10 float64   `json:"final_log10_residual"`
	Order      float64   `json:"order_estimate"`
}

// Save writes one run. The ID and timestamp fields of meta are filled in
// here; the returned string is the run ID.
func (s *Store) Save(meta RunMetadata, points []trace.Point) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Function, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trace.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "x", "f", "log10_abs_f"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Step),
			p.X,
			p.F,
			strconv.FormatFloat(p.Log10, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]trace.Point, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trace.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]trace.Point, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		step, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		lg, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		points = append(points, trace.Point{
			Step:  step,
			X:     record[1],
			F:     record[2],
			Log10: lg,
		})
	}

	return points, nil
}
