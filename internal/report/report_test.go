package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/contactkeval/option-curve/internal/curve"
	"github.com/contactkeval/option-curve/internal/pricing"
	"github.com/contactkeval/option-curve/internal/sweep"
)

func smallCurve(t *testing.T) *curve.Curve {
	t.Helper()
	p := pricing.Parameters{Strike: 100, Maturity: 1.0, Rate: 0.02, Volatility: 0.2, Dividend: 0.01}
	c, err := curve.Generate(p, curve.Config{Samples: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return c
}

func TestWriteJSONRoundTrip(t *testing.T) {
	c := smallCurve(t)
	dir := t.TempDir()

	if err := WriteJSON(c, dir); err != nil {
		t.Fatalf("write json: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "curve.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got curve.Curve
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(c, &got) {
		t.Fatal("round-tripped curve differs")
	}
}

func TestWriteCSVShape(t *testing.T) {
	c := smallCurve(t)
	dir := t.TempDir()

	if err := WriteCSV(c, dir); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "curve.csv"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != c.Len()+1 {
		t.Fatalf("expected %d rows, got %d", c.Len()+1, len(rows))
	}
	wantHeader := []string{"spot", "call", "put", "call_intrinsic", "put_intrinsic"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	for i, row := range rows[1:] {
		if len(row) != len(wantHeader) {
			t.Fatalf("row %d has %d columns", i, len(row))
		}
	}
}

func TestWriteSweepJSONKeepsFailedSlots(t *testing.T) {
	c := smallCurve(t)
	dir := t.TempDir()

	results := []sweep.Result{
		{Curve: c},
		{Err: errors.New("bad bound")},
	}
	if err := WriteSweepJSON(results, dir); err != nil {
		t.Fatalf("write sweep: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "sweep.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var entries []struct {
		Curve *curve.Curve `json:"curve"`
		Error string       `json:"error"`
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Curve == nil || entries[0].Error != "" {
		t.Fatal("successful entry malformed")
	}
	if entries[1].Curve != nil || entries[1].Error != "bad bound" {
		t.Fatal("failed entry malformed")
	}
}
