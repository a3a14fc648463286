package main

import (
	"strings"

	"github.com/AvengeMedia/jetcolors/internal/config"
	"github.com/AvengeMedia/jetcolors/internal/jet"
	"github.com/AvengeMedia/jetcolors/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd(lookup config.LookupFunc, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jetcolors",
		Short: "Compute color replacements for a new $jet",
		Long: `Compute the literal color replacements needed when changing $jet.

Reads JET_OLD and JET_NEW from the environment (or --old/--new) and prints
tab-separated rows: label<TAB>old_value<TAB>new_value`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, lookup, fs)
		},
	}

	cmd.Flags().String("old", "", "Old base color (overrides "+config.EnvJetOld+")")
	cmd.Flags().String("new", "", "New base color (overrides "+config.EnvJetNew+")")
	cmd.Flags().String("variant", config.DefaultVariant, "Built-in pipeline: "+strings.Join(config.Variants(), ", "))
	cmd.Flags().String("pipeline", "", "Load the derivation pipeline from a YAML file")
	cmd.Flags().String("format", string(jet.FormatTSV), "Output format: tsv, json or preview")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

func runDerive(cmd *cobra.Command, lookup config.LookupFunc, fs afero.Fs) error {
	oldFlag, _ := cmd.Flags().GetString("old")
	newFlag, _ := cmd.Flags().GetString("new")
	variant, _ := cmd.Flags().GetString("variant")
	pipelinePath, _ := cmd.Flags().GetString("pipeline")
	formatFlag, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		log.SetLevel("debug")
	}

	format, err := jet.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(lookup, config.Config{JetOld: oldFlag, JetNew: newFlag})
	if err != nil {
		return err
	}

	src, err := config.PipelineSource(fs, variant, pipelinePath)
	if err != nil {
		return err
	}
	pipeline, err := jet.ParsePipeline(src)
	if err != nil {
		return err
	}
	log.Debugf("Using pipeline %s with %d rows", pipeline.Name, len(pipeline.Labels()))

	entries, err := pipeline.Derive(cfg.JetOld, cfg.JetNew)
	if err != nil {
		return err
	}
	log.Debugf("Derived %d replacements from %s -> %s", len(entries), cfg.JetOld, cfg.JetNew)

	return jet.Write(cmd.OutOrStdout(), format, entries)
}
