// Package report writes generated curves to disk for the external
// rendering collaborator. The contract is just the aligned numeric
// sequences; layout and plotting belong to the consumer.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-curve/internal/curve"
	"github.com/contactkeval/option-curve/internal/sweep"
)

// WriteJSON writes the curve as curve.json in outdir.
func WriteJSON(c *curve.Curve, outdir string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "curve.json"), b, 0644)
}

// WriteCSV writes the curve as curve.csv in outdir, one row per spot.
func WriteCSV(c *curve.Curve, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "curve.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"spot", "call", "put", "call_intrinsic", "put_intrinsic"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for i := 0; i < c.Len(); i++ {
		s := c.Sample(i)
		row := []string{
			fmt.Sprintf("%.6f", s.Spot),
			fmt.Sprintf("%.6f", s.Call),
			fmt.Sprintf("%.6f", s.Put),
			fmt.Sprintf("%.6f", s.CallIntrinsic),
			fmt.Sprintf("%.6f", s.PutIntrinsic),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// sweepEntry is the JSON shape of one batch result. Failed jobs keep
// their slot with an error string instead of a curve.
type sweepEntry struct {
	Job   sweep.Job    `json:"job"`
	Curve *curve.Curve `json:"curve,omitempty"`
	Error string       `json:"error,omitempty"`
}

// WriteSweepJSON writes batch results as sweep.json in outdir.
func WriteSweepJSON(results []sweep.Result, outdir string) error {
	entries := make([]sweepEntry, 0, len(results))
	for _, res := range results {
		e := sweepEntry{Job: res.Job, Curve: res.Curve}
		if res.Err != nil {
			e.Error = res.Err.Error()
		}
		entries = append(entries, e)
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "sweep.json"), b, 0644)
}
