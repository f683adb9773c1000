package main

import (
	"fmt"
	"os"

	"github.com/oradiff/opatch-diff/internal/config"
	"github.com/oradiff/opatch-diff/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "1.2.0"

	cfgFile   string
	shortMode bool
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "opatch-diff",
	Short: "Compare Oracle OPatch patch inventories",
	Long: `opatch-diff compares the patch inventories of two Oracle homes, reported
either as captured 'opatch lspatches'/'opatch lsinventory' output files or
by querying live ORACLE_HOME directories, and shows the patches unique to
each side along with the Database Release Update versions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logging.Init(cfg.LogFormat, cfg.LogLevel, os.Stderr)
		cfg.Validate()

		if !cmd.Flags().Changed("short") {
			shortMode = cfg.Short
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("opatch-diff v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/opatch-diff/opatch-diff.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&shortMode, "short", "s", false, "print less details (hide extra patch lines)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(releaseUpdateCmd)
	rootCmd.AddCommand(oratabCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
