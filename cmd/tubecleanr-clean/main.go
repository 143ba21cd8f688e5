package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"tubecleanr/internal/modkit"
	"tubecleanr/internal/modkit/module"
	"tubecleanr/internal/platform/config"
	"tubecleanr/internal/platform/logger"
	"tubecleanr/internal/platform/store"

	"tubecleanr/internal/adapters/input/csvbatch"
	"tubecleanr/internal/services/api/comments/domain"
	normdom "tubecleanr/internal/services/normalizer/domain"
	normmod "tubecleanr/internal/services/normalizer/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	var (
		inPath   = flag.String("in", "", "input CSV exported by the collector (required)")
		schemaIn = flag.String("schema", "", "source schema tag: tuber|schemaA|vosonsml|schemaB (required)")
		outPath  = flag.String("out", "-", "JSONL output path, - for stdout, empty to skip")
		dictPath = flag.String("dict", "", "extra emoji dictionary CSV layered over the embedded table")
		workers  = flag.Int("workers", 4, "concurrency (>=1)")
		dryRun   = flag.Bool("dry-run", false, "normalize but do not write to postgres")
		usePG    = flag.Bool("pg", false, "persist batches to postgres (needs SERVICE_PGSQL_DBURL)")
	)
	flag.Parse()

	if *inPath == "" || *schemaIn == "" {
		log.Fatal("-in and -schema are required")
	}

	var st *store.Store
	if *usePG {
		var err error
		st, err = store.Open(context.Background(), store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		}, store.WithLogger(*l))
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	// Pass CLI flags into CORE_CLEAN_* so the module can read its own config
	mustSetEnv("CORE_CLEAN_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_CLEAN_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])
	mustSetEnv("CORE_CLEAN_DICT_PATH", *dictPath)

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
	}
	if st != nil {
		deps.PG = st.PG
	}

	nm := normmod.New(deps, normmod.Options{
		Workers:  *workers,
		DryRun:   *dryRun,
		DictPath: *dictPath,
	})
	module.Register(nm.Name(), nm.Ports())
	runner := module.MustPortsOf[normmod.Ports](nm).Runner

	rows, err := csvbatch.ReadFile(*inPath)
	if err != nil {
		l.Fatal().Err(err).Msg("read input batch")
	}
	recs := make([]map[string]string, len(rows))
	for i, r := range rows {
		recs[i] = r
	}

	out, err := runner.NormalizeBatch(context.Background(), normdom.BatchInput{
		Schema:  *schemaIn,
		Records: recs,
	})
	if err != nil {
		l.Fatal().Err(err).Str("schema", *schemaIn).Msg("normalize failed")
	}

	if *outPath != "" {
		if err := writeJSONL(*outPath, out); err != nil {
			l.Fatal().Err(err).Msg("write output")
		}
	}

	for _, re := range out.Errors {
		l.Warn().Int("index", re.Index).Str("reason", re.Reason).Msg("record skipped")
	}
	l.Info().
		Str("batch_id", out.BatchID).
		Str("schema", out.Schema).
		Int("comments", len(out.Comments)).
		Int("errors", len(out.Errors)).
		Msg("batch done")
}

// writeJSONL emits one wire-form record per line
func writeJSONL(path string, out normdom.BatchOutput) error {
	w := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close() // nolint: errcheck
		w = f
	}
	enc := json.NewEncoder(w)
	for _, pc := range out.Comments {
		if err := enc.Encode(domain.FromProcessed(pc)); err != nil {
			return err
		}
	}
	return nil
}
