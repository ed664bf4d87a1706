// Package fixture runs one complete generation: slips, then members, then
// the report and the ledger entry.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/slippage/internal/config"
	"pkg.jsn.cam/slippage/internal/ledger"
	"pkg.jsn.cam/slippage/pkg/generator"
	"pkg.jsn.cam/slippage/pkg/marina"
)

// Result is what a run produced
type Result struct {
	Slips    []marina.Slip
	Members  []marina.Member
	Stats    generator.Stats
	Manifest *ledger.Manifest
}

// NewRand returns the random source for seed. Both generators draw from the
// same stream, slips first, so the member file depends on the slip count.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ResolveProfile picks ProfileFile over the registered Profile name
func ResolveProfile(cfg *config.Config) (generator.Profile, error) {
	if cfg.ProfileFile != "" {
		return generator.LoadProfile(cfg.ProfileFile)
	}
	return generator.Get(cfg.Profile)
}

// Run generates both files under cfg.Dir, prints progress and statistics to
// out and records the run in led (which may be nil)
func Run(cfg *config.Config, led *ledger.Ledger, out io.Writer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profile, err := ResolveProfile(cfg)
	if err != nil {
		return nil, err
	}
	strategy, err := generator.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	r := NewRand(cfg.Seed)
	opts := marina.WriteOptions{CRLF: cfg.CRLF}
	slipsPath := filepath.Join(cfg.Dir, cfg.SlipsFile)
	membersPath := filepath.Join(cfg.Dir, cfg.MembersFile)

	fmt.Fprintf(out, "Generating %d slips...\n", cfg.Slips)
	slips := generator.GenerateSlips(r, profile.Slips, cfg.Slips, strategy)
	if err := writeFile(slipsPath, func(w io.Writer) error {
		return marina.WriteSlips(w, slips, opts)
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Generated %d slips\n", len(slips))
	if len(slips) != cfg.Slips {
		log.Printf("[FIXTURE] Warning: requested %d slips, %s strategy produced %d", cfg.Slips, strategy, len(slips))
	}

	fmt.Fprintf(out, "\nGenerating %d members...\n", cfg.Members)
	members := generator.GenerateMembers(r, profile.Members, cfg.Members, marina.SlipIDs(slips))
	if err := writeFile(membersPath, func(w io.Writer) error {
		return marina.WriteMembers(w, members, opts)
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Generated %d members\n", len(members))

	stats := generator.Summarize(slips, members)
	if err := stats.Print(out); err != nil {
		return nil, err
	}

	manifest := &ledger.Manifest{
		Seed:             cfg.Seed,
		Profile:          profile.Name,
		Strategy:         string(strategy),
		RequestedSlips:   cfg.Slips,
		RequestedMembers: cfg.Members,
		Slips:            len(slips),
		Members:          len(members),
		Dir:              absDir(cfg.Dir),
	}

	fmt.Fprintf(out, "\nFiles:\n")
	for _, name := range []string{cfg.SlipsFile, cfg.MembersFile} {
		d, err := ledger.DigestRunFile(cfg.Dir, name)
		if err != nil {
			return nil, err
		}
		manifest.Files = append(manifest.Files, d)
		fmt.Fprintf(out, "  %s (%s)\n", filepath.Join(cfg.Dir, name), humanize.Bytes(uint64(d.Bytes)))
	}

	if led != nil {
		if err := led.Record(manifest); err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "  Run ID: %s\n", manifest.RunID)
	}

	return &Result{
		Slips:    slips,
		Members:  members,
		Stats:    stats,
		Manifest: manifest,
	}, nil
}

// writeFile opens path, lets fn fill it and closes it before returning
func writeFile(path string, fn func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func absDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// Summarize re-reads existing slip and member files and prints their statistics
func Summarize(slipsPath, membersPath string, out io.Writer) (generator.Stats, error) {
	slips, err := readFile(slipsPath, marina.ReadSlips)
	if err != nil {
		return generator.Stats{}, err
	}
	members, err := readFile(membersPath, marina.ReadMembers)
	if err != nil {
		return generator.Stats{}, err
	}

	stats := generator.Summarize(slips, members)
	return stats, stats.Print(out)
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}
