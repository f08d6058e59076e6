package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gobayes/adapters/excel"
	"gobayes/adapters/present"
	"gobayes/adapters/rng"
	"gobayes/domain/bayes"
	"gobayes/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[CLI] Failed to load configuration: %v", err)
	}

	var (
		file   = flag.String("file", cfg.Data.TableFile, "path to a 2x2 count table (.csv or .xlsx)")
		sheet  = flag.String("sheet", cfg.Data.Sheet, "sheet name for .xlsx input")
		draws  = flag.Int("draws", cfg.Sampling.Draws, "number of posterior draws")
		seed   = flag.Int64("seed", cfg.Sampling.Seed, "sampling seed")
		level  = flag.Float64("level", cfg.Sampling.Level, "credible level")
		method = flag.String("method", string(bayes.MethodHPD), "interval method: hpd or quantile")
		report = flag.String("report", "", "write an HTML report to this path")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -file table.csv [-draws n] [-seed n] [-level l] [-method hpd|quantile]")
		os.Exit(2)
	}

	ctx := context.Background()
	table, err := excel.NewTableReader(*sheet).ReadTable(ctx, *file)
	if err != nil {
		log.Fatalf("[CLI] Failed to read table: %v", err)
	}

	cells, err := bayes.CellProbabilities(table, nil)
	if err != nil {
		log.Fatalf("[CLI] Cell estimation failed: %v", err)
	}
	fmt.Printf("posterior mean cell probabilities:\n")
	for i := 0; i < 2; i++ {
		fmt.Printf("  %-12s %.4f  %.4f\n", table.RowLabel(i), cells[i][0], cells[i][1])
	}
	fmt.Println()

	fit, err := bayes.Fit(table, nil)
	if err != nil {
		log.Fatalf("[CLI] Fit failed: %v", err)
	}

	src, err := rng.New().SeededSource(ctx, *file, *seed)
	if err != nil {
		log.Fatalf("[CLI] RNG setup failed: %v", err)
	}
	samples, err := fit.Sample(*draws, src)
	if err != nil {
		log.Fatalf("[CLI] Sampling failed: %v", err)
	}
	summary, err := fit.Summarize(samples, *level, bayes.IntervalMethod(*method))
	if err != nil {
		log.Fatalf("[CLI] Summary failed: %v", err)
	}

	fmt.Print(present.RenderGroupsText(summary))
	fmt.Println()
	fmt.Print(present.RenderText(summary))

	if *report != "" {
		if err := os.WriteFile(*report, present.RenderHTML(*file, summary), 0o644); err != nil {
			log.Fatalf("[CLI] Failed to write report: %v", err)
		}
		fmt.Printf("\nreport written to %s\n", *report)
	}
}
