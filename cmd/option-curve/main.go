package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/contactkeval/option-curve/internal/curve"
	"github.com/contactkeval/option-curve/internal/logger"
	"github.com/contactkeval/option-curve/internal/params"
	"github.com/contactkeval/option-curve/internal/report"
	"github.com/contactkeval/option-curve/internal/sweep"
)

func main() {
	// optional .env for local defaults
	if err := godotenv.Load(); err == nil {
		logger.Debugf("loaded .env")
	}

	def := params.Defaults()
	strike := flag.Float64("strike", def.Strike, "strike price K")
	maturity := flag.Float64("maturity", def.Maturity, "time to maturity in years")
	rate := flag.Float64("rate", def.RatePct, "risk-free rate in percent")
	vol := flag.Float64("vol", def.VolPct, "volatility in percent")
	dividend := flag.Float64("dividend", def.DividendPct, "dividend yield in percent")
	samples := flag.Int("samples", curve.DefaultSamples, "sample points per curve")
	smin := flag.String("smin", "", "lower spot bound, expression over K (default \"0\")")
	smax := flag.String("smax", "", "upper spot bound, expression over K (default \"2*K\")")
	outdir := flag.String("out", envOr("OPTION_CURVE_OUT", "./out"), "output directory")
	batch := flag.String("batch", "", "JSON file with an array of input sets (batch mode)")
	rest := flag.Bool("rest", false, "run as REST server (serve curves to a chart UI)")
	port := flag.String("port", envOr("OPTION_CURVE_ADDR", ":8080"), "REST server listen address")
	verbosity := flag.Int("v", 1, "0=errors,1=info,2=debug,3=trace")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	cfg := curve.Config{Samples: *samples, MinSpot: *smin, MaxSpot: *smax}

	if *rest {
		serve(*port, cfg)
		return
	}

	if *batch != "" {
		runBatch(*batch, cfg, *outdir)
		return
	}

	in := params.Inputs{
		Strike:      *strike,
		Maturity:    *maturity,
		RatePct:     *rate,
		VolPct:      *vol,
		DividendPct: *dividend,
	}.Clamped()

	start := time.Now()
	c, err := curve.Generate(in.Parameters(), cfg)
	if err != nil {
		log.Fatalf("generating curve: %v", err)
	}
	if err := os.MkdirAll(*outdir, 0755); err != nil {
		log.Fatalf("could not create output dir %s: %v", *outdir, err)
	}
	if err := report.WriteJSON(c, *outdir); err != nil {
		log.Fatalf("writing curve.json: %v", err)
	}
	if err := report.WriteCSV(c, *outdir); err != nil {
		log.Fatalf("writing curve.csv: %v", err)
	}
	logger.Infof("wrote %d samples to %s in %v", c.Len(), *outdir, time.Since(start))
}

// serve exposes the curve generator to an external chart UI.
// GET /curve?strike=100&maturity=1&rate=2&vol=20&dividend=1&samples=200
// returns the five aligned sequences as JSON.
func serve(addr string, cfg curve.Config) {
	mux := http.NewServeMux()
	mux.HandleFunc("/curve", func(w http.ResponseWriter, r *http.Request) {
		def := params.Defaults()
		in := params.Inputs{
			Strike:      queryFloat(r, "strike", def.Strike),
			Maturity:    queryFloat(r, "maturity", def.Maturity),
			RatePct:     queryFloat(r, "rate", def.RatePct),
			VolPct:      queryFloat(r, "vol", def.VolPct),
			DividendPct: queryFloat(r, "dividend", def.DividendPct),
		}.Clamped()

		reqCfg := cfg
		if n := queryFloat(r, "samples", float64(cfg.Samples)); n > 0 {
			reqCfg.Samples = int(n)
		}

		c, err := curve.Generate(in.Parameters(), reqCfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})
	logger.Infof("starting REST server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// runBatch prices every input set of the batch file in parallel and
// writes the combined results as sweep.json.
func runBatch(path string, cfg curve.Config, outdir string) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading batch file: %v", err)
	}
	var inputs []params.Inputs
	if err := json.Unmarshal(b, &inputs); err != nil {
		log.Fatalf("invalid batch file: %v", err)
	}
	if len(inputs) == 0 {
		log.Fatalf("batch file %s has no input sets", path)
	}

	jobs := make([]sweep.Job, 0, len(inputs))
	for _, in := range inputs {
		jobs = append(jobs, sweep.Job{Params: in.Clamped().Parameters(), Config: cfg})
	}

	workers := sweep.Workers()
	logger.Infof("pricing %d parameter sets with %d workers", len(jobs), workers)

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("Pricing"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	results := sweep.Run(jobs, workers, bar)
	p.Wait()

	if err := os.MkdirAll(outdir, 0755); err != nil {
		log.Fatalf("could not create output dir %s: %v", outdir, err)
	}
	if err := report.WriteSweepJSON(results, outdir); err != nil {
		log.Fatalf("writing sweep.json: %v", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.Infof("wrote %d curves (%d failed) to %s", len(results)-failed, failed, outdir)
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
