package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/noa-levi/asm24/assembler"
	"github.com/noa-levi/asm24/config"
	"github.com/noa-levi/asm24/diag"
	"github.com/noa-levi/asm24/output"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to a TOML config file (default: platform config dir)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("asm24 %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	basenames := flag.Args()
	if len(basenames) == 0 {
		fmt.Fprintln(os.Stderr, "usage: asm24 [-config path] basename [basename ...]")
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	limits := assembler.Limits{
		MaxLineLength:    cfg.Limits.MaxLineLength,
		MaxLabelLength:   cfg.Limits.MaxLabelLength,
		ImageCapacity:    cfg.Limits.ImageCapacity,
		ICInit:           cfg.Limits.ICInit,
		MacroLineCap:     cfg.Macro.LineCap,
		MacroBucketCount: cfg.Macro.BucketCount,
		WarnUnusedExtern: cfg.Output.WarnUnusedExtern,
	}

	for _, basename := range basenames {
		if err := processFile(basename, limits, cfg.Output.Dir); err != nil {
			log.Printf("%s: %v", basename, err)
		}
	}
}

// loadConfig loads the optional TOML config, falling back to defaults on
// any error (missing file, malformed TOML) since a config file is purely
// a convenience, never required.
func loadConfig(path string) *config.Config {
	if path != "" {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			log.Printf("config: %v; using defaults", err)
			return config.DefaultConfig()
		}
		return cfg
	}
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// processFile runs the full pipeline for one basename: read X.as, write
// the macro-expanded X.am unconditionally, and on success write
// X.ob/X.ext/X.ent. Per §6, a per-file failure is logged but never
// changes the process exit code.
func processFile(basename string, limits assembler.Limits, outDir string) error {
	srcPath := basename + ".as"
	raw, err := os.ReadFile(srcPath) // #nosec G304 -- operator-supplied basename on the command line
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")

	rep := diag.NewRecorder(diag.NewConsoleReporter(os.Stderr))
	result := assembler.Assemble(srcPath, filepath.Base(basename), lines, limits, rep)

	amPath := outPath(basename, outDir, ".am")
	if err := os.WriteFile(amPath, []byte(strings.Join(result.Expanded, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", amPath, err)
	}

	if !result.OK {
		return fmt.Errorf("assembly failed, %s not produced", basename+".ob")
	}

	if err := output.WriteObject(outPath(basename, outDir, ".ob"), result.Program, limits.ICInit); err != nil {
		return err
	}
	if err := output.WriteExternals(outPath(basename, outDir, ".ext"), result.Program); err != nil {
		return err
	}
	if err := output.WriteEntries(outPath(basename, outDir, ".ent"), result.Program); err != nil {
		return err
	}
	return nil
}

func outPath(basename, outDir, ext string) string {
	if outDir == "" {
		return basename + ext
	}
	return filepath.Join(outDir, filepath.Base(basename)+ext)
}
