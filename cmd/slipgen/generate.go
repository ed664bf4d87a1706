package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkg.jsn.cam/slippage/internal/config"
	"pkg.jsn.cam/slippage/internal/fixture"
	"pkg.jsn.cam/slippage/internal/ledger"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the slip and member fixtures",
		Long: `Generate slips, then members, from the selected size profile.

Flags override environment variables, which override the config file.

Example:
  slipgen generate
  slipgen generate --seed 7 --slips 120 --strategy proportional --dir fixtures`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64("seed", config.DefaultSeed, "random seed")
	f.Int("slips", config.DefaultSlips, "number of slips")
	f.Int("members", config.DefaultMembers, "number of members")
	f.String("dir", ".", "output directory")
	f.String("slips-file", config.DefaultSlipsFile, "slips file name")
	f.String("members-file", config.DefaultMembersFile, "members file name")
	f.String("profile", "complex", "registered size profile")
	f.String("profile-file", "", "YAML size profile (overrides --profile)")
	f.String("strategy", "truncate", "slip allocation: truncate or proportional")
	f.String("ledger", "", "bbolt run ledger path (runs are not recorded when empty)")
	f.Bool("lf", false, "end rows with \\n instead of \\r\\n")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var led *ledger.Ledger
	if cfg.Ledger != "" {
		led, err = ledger.Open(cfg.Ledger)
		if err != nil {
			return err
		}
		defer led.Close()
	}

	_, err = fixture.Run(cfg, led, cmd.OutOrStdout())
	return err
}

// loadConfig resolves file and environment settings, then applies any flag
// the user set explicitly on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{ConfigPath: configPath, EnvFile: envFile})
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	changed := func(name string) bool {
		fl := f.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if changed("slips") {
		cfg.Slips, _ = f.GetInt("slips")
	}
	if changed("members") {
		cfg.Members, _ = f.GetInt("members")
	}
	stringFlags := map[string]*string{
		"dir":          &cfg.Dir,
		"slips-file":   &cfg.SlipsFile,
		"members-file": &cfg.MembersFile,
		"profile":      &cfg.Profile,
		"profile-file": &cfg.ProfileFile,
		"strategy":     &cfg.Strategy,
		"ledger":       &cfg.Ledger,
	}
	for name, dst := range stringFlags {
		if changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if changed("lf") {
		lf, _ := f.GetBool("lf")
		cfg.CRLF = !lf
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ledgerFlag adds the --ledger flag to commands that only read the ledger
func ledgerFlag(f *pflag.FlagSet) {
	f.String("ledger", "", "bbolt run ledger path (default $SLIPGEN_LEDGER)")
}
