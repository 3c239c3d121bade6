package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"launchdash/internal/testkit"
)

func main() {
	out := flag.String("out", "-", "output file path, - for stdout (csv only)")
	launches := flag.Int("launches", 56, "number of launches")
	format := flag.String("format", "", "output format: csv or xlsx (default inferred from -out)")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	sites := flag.String("sites", "", "comma-separated launch sites (default: the four SpaceX pads)")
	maxPayload := flag.Float64("max-payload", 9600, "largest payload mass in kg")
	flag.Parse()

	if *launches <= 0 {
		fmt.Fprintln(os.Stderr, "launches must be > 0")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		switch strings.ToLower(filepath.Ext(*out)) {
		case ".xlsx":
			fmtName = "xlsx"
		default:
			fmtName = "csv"
		}
	}
	if fmtName == "xlsx" && *out == "-" {
		fmt.Fprintln(os.Stderr, "xlsx output needs a file path")
		os.Exit(2)
	}

	cfg := testkit.DefaultLaunchConfig()
	cfg.LaunchCount = *launches
	cfg.Seed = *seed
	cfg.MaxPayloadKg = *maxPayload
	if *sites != "" {
		cfg.Sites = nil
		for _, s := range strings.Split(*sites, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Sites = append(cfg.Sites, s)
			}
		}
	}

	records, err := testkit.NewLaunchGenerator(cfg).Generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generating launches:", err)
		os.Exit(1)
	}

	switch fmtName {
	case "csv":
		w := os.Stdout
		if *out != "-" {
			f, err := os.Create(*out)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error creating output:", err)
				os.Exit(1)
			}
			defer f.Close()
			w = f
		}
		if err := testkit.WriteCSV(w, records); err != nil {
			fmt.Fprintln(os.Stderr, "error writing csv:", err)
			os.Exit(1)
		}
	case "xlsx":
		if err := testkit.WriteXLSX(*out, records); err != nil {
			fmt.Fprintln(os.Stderr, "error writing xlsx:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "invalid -format (expected csv or xlsx)")
		os.Exit(2)
	}

	if *out != "-" {
		fmt.Fprintf(os.Stderr, "wrote %d launches to %s\n", len(records), *out)
	}
}
