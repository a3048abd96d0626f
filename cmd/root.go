package cmd

import (
	"fmt"
	"github.com/ValentinKolb/jstr/cmd/decode"
	"github.com/ValentinKolb/jstr/cmd/encode"
	"github.com/ValentinKolb/jstr/cmd/perf"
	"github.com/ValentinKolb/jstr/cmd/util"
	"github.com/ValentinKolb/jstr/lib/common"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "jstr",
		Short: "gson compatible JSON string encoder",
		Long: fmt.Sprintf(`jstr (v%s)

Encodes text as JSON string literals the way gson does: HTML-safe
escaping by default, U+2028/U+2029 always escaped and broken UTF-16
surrogate pairs reported as errors.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: setupRoot,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of jstr",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jstr v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(encode.EncodeCmd)
	RootCmd.AddCommand(decode.DecodeCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "gson", util.WrapString("serializer to use (gson, gson-plain, jsoniter, std)"))
	key = "html-safe"
	RootCmd.PersistentFlags().Bool(key, true, util.WrapString("Escape <, >, &, = and ' (gson default). Set to false for the default escape table"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("The log level (debug, info, warn, error). Logs are written to stderr"))
}

// setupRoot binds the flags of the executed command and initializes the loggers
func setupRoot(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	return common.InitLoggers(*util.GetConfig())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
