// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the danb CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd downloads one file and exits.
var rootCmd = &cobra.Command{
	Use:   "danb <pdb|cif|fasta> <UniProtID|PDBID>",
	Short: "Download a protein sequence or structure file",
	Long: `danb downloads a FASTA sequence or a PDB/CIF structure for a UniProt
accession or PDB entry ID.

Identifiers of six or more characters starting with a letter are treated as
UniProt accessions: sequences come from UniProt and structures from the
AlphaFold DB. Everything else is treated as a PDB ID and fetched from RCSB.
The file is written to <identifier>.<format> in the current directory.`,
	Example: `  danb fasta P69905
  danb cif 4HHB
  danb pdb P69905 -o hba_alphafold.pdb`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)
		return nil
	},
	RunE: runDownload,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./danb.yaml or ~/.config/danb/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log resolution and transfer details to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("danb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "danb"))
		}
	}

	setConfigDefaults()
	bindFlags()

	viper.SetEnvPrefix("DANB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
