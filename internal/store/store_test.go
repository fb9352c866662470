package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rootlab/internal/trace"
)

// A value far beyond float64 precision, as a big backend run would record.
const deepX = "0.73908513321516064165531208767387340401341175890075746496568063577328465488354759459937610693176653184980124664398716302771490369130842031578044057462077868852490389153928943884509523480133563127677223158095635377657245120437341993643351631840594239598167412892886514622480281425019453462149665888"

func testPoints() []trace.Point {
	return []trace.Point{
		{Step: 0, X: "1", F: "-0.45969769413186023", Log10: -0.34},
		{Step: 1, X: deepX, F: "-2.3e-300", Log10: -299.64},
	}
}

func testMeta() RunMetadata {
	return RunMetadata{
		Function:   "dottie",
		Method:     "cubic",
		Backend:    "big",
		Prec:       1024,
		X0:         "1.0",
		Steps:      1,
		Root:       deepX,
		FinalLog10: -299.64,
		Order:      3.02,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testPoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %q, got %q", runID, meta.ID)
	}
	if meta.Function != "dottie" || meta.Method != "cubic" {
		t.Errorf("expected dottie/cubic, got %s/%s", meta.Function, meta.Method)
	}
	if meta.Prec != 1024 {
		t.Errorf("expected prec 1024, got %d", meta.Prec)
	}
	if meta.Root != deepX {
		t.Error("expected the full-precision root to round-trip")
	}
	if meta.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}

	points, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].X != deepX {
		t.Error("expected the full-precision iterate to round-trip")
	}
	if points[1].Log10 != -299.64 {
		t.Errorf("expected log residual -299.64, got %v", points[1].Log10)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), testPoints()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testPoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, runID, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(dir, runID, "trace.csv")); os.IsNotExist(err) {
		t.Error("trace.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	meta := testMeta()
	if err := ExportJSON(path, &meta, testPoints()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Function != "dottie" {
		t.Errorf("expected function dottie, got %s", got.Function)
	}
	if len(got.Points) != 2 {
		t.Errorf("expected 2 trace points, got %d", len(got.Points))
	}
	if got.Points[1].X != deepX {
		t.Error("expected the full-precision iterate in the export")
	}
}
