// Package root contains the root command for the application.
package root

import (
	"fjacquet/bill-import/internal/committer"
	"fjacquet/bill-import/internal/common"
	"fjacquet/bill-import/internal/config"
	"fjacquet/bill-import/internal/currencyutils"
	"fjacquet/bill-import/internal/importer"
	"fjacquet/bill-import/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input      string
	Output     string
	Source     string
	Account    string
	Categories string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bill-import",
		Short: "A CLI tool to parse finance app export files into canonical transactions.",
		Long: `bill-import parses heterogeneous export files from third-party finance
and payment apps (支付宝, 微信支付, 钱迹, 随手记, spreadsheet exports, generic CSV)
into canonical transaction records ready for commitment into a ledger.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bill-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Propagate the configured logger to every parsing package.
			importer.SetLogger(Log)
			currencyutils.SetLogger(Log)
			common.SetLogger(Log)
			store.SetLogger(Log)
			committer.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Failed to load configuration, using defaults")
				return
			}
			Cfg = cfg

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cfg is the loaded application configuration; nil until the root
	// command's PersistentPreRun has executed.
	Cfg *config.Config
)

// EngineOptions builds importer options from the loaded configuration.
func EngineOptions() importer.Options {
	opts := importer.Options{}
	if Cfg != nil {
		opts.HeaderScanLimit = Cfg.Importer.HeaderScanLimit
		if Cfg.CSV.Delimiter != "" {
			opts.Delimiter = []rune(Cfg.CSV.Delimiter)[0]
		}
	}
	return opts
}

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input export file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Source, "source", "s", "generic", "Import source (alipay, wechatpay, qianji, suishouji, spreadsheet, generic)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Account, "account", "a", "default", "Default account id for committed transactions")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Categories, "categories", "c", "", "Categories YAML file (defaults to categories.yaml)")
}
