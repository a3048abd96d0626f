package util

import (
	"github.com/ValentinKolb/jstr/lib/common"
	"github.com/ValentinKolb/jstr/lib/serializer"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("jstr")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetConfig reads the encoder configuration from viper
func GetConfig() *common.Config {
	return &common.Config{
		HTMLSafe:   viper.GetBool("html-safe"),
		Serializer: viper.GetString("serializer"),
		InputUnits: viper.GetBool("units"),
		ReadStdin:  viper.GetBool("stdin"),
		Metrics:    viper.GetBool("metrics"),
		LogLevel:   viper.GetString("log-level"),
	}
}

// GetPerfConfig reads the perf configuration from viper
func GetPerfConfig() *common.PerfConfig {
	conf := &common.PerfConfig{
		Threads:   viper.GetInt("threads"),
		SizeBytes: viper.GetInt("size"),
		Skip:      splitList(viper.GetString("skip")),
		CSVPath:   viper.GetString("csv"),
	}
	conf.Serializers = splitList(viper.GetString("serializers"))
	if len(conf.Serializers) == 0 {
		conf.Serializers = serializer.Names()
	}
	return conf
}

// GetSerializer creates a serializer based on configuration.
// The gson serializer honors the html-safe flag.
func GetSerializer() (serializer.ISerializer, error) {
	name := viper.GetString("serializer")
	if strings.EqualFold(name, serializer.NameGson) && !viper.GetBool("html-safe") {
		name = serializer.NameGsonPlain
	}
	return serializer.NewSerializer(name)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}

// splitList splits a comma separated list and drops empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
