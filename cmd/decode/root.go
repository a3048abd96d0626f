package decode

import (
	"fmt"
	"github.com/ValentinKolb/jstr/lib/compat"
	"github.com/spf13/cobra"
	"io"
	"sort"
)

var (
	// DecodeCmd decodes a flat JSON object with the lenient decoders
	DecodeCmd = &cobra.Command{
		Use:   "decode [json]",
		Short: "Decode a flat JSON object and print key=value lines",
		Long: `Decode a flat JSON object and print its fields as key=value lines
sorted by key. Numbers and booleans are printed as their JSON text,
null as the empty string. Without an argument the object is read
from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else {
				var err error
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}
			return Run(compat.Default(), data, cmd.OutOrStdout())
		},
	}
)

// Run decodes data and writes the sorted fields to out
func Run(conf *compat.Config, data []byte, out io.Writer) error {
	fields, err := conf.DecodeStringMap(data)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%s=%s\n", k, fields[k]); err != nil {
			return err
		}
	}
	return nil
}
