package encode

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/ValentinKolb/jstr/cmd/util"
	"github.com/ValentinKolb/jstr/lib/common"
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"github.com/ValentinKolb/jstr/lib/serializer"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"io"
	"os"
)

var log = logger.GetLogger("cmd")

var (
	// EncodeCmd encodes its arguments as JSON string literals
	EncodeCmd = &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text as JSON string literals, one per line",
		Long: `Encode text as JSON string literals, one per line.

With --units every argument is a list of hex UTF-16 code units
(e.g. "d83d,de00"). Code units bypass the serializer, so broken
surrogate pairs are reported instead of being replaced.`,
		RunE: run,
	}
)

func init() {
	key := "units"
	EncodeCmd.Flags().Bool(key, false, util.WrapString("Read the input as comma separated hex UTF-16 code units"))
	key = "stdin"
	EncodeCmd.Flags().Bool(key, false, util.WrapString("Encode stdin line by line instead of the arguments"))
	key = "metrics"
	EncodeCmd.Flags().Bool(key, false, util.WrapString("Print the encode counters in Prometheus text format when done"))
}

func run(cmd *cobra.Command, args []string) error {
	conf := util.GetConfig()
	log.Debugf("encode configuration:%s", conf.String())

	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	inputs := args
	if conf.ReadStdin {
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	set := metrics.NewSet()
	runErr := Run(*conf, s, inputs, cmd.OutOrStdout(), set)

	if conf.Metrics {
		set.WritePrometheus(cmd.OutOrStdout())
	}
	return runErr
}

// Run encodes every input and writes one literal per line to out. Inputs that
// fail are reported on stderr and counted; the returned error summarizes the
// failures.
func Run(conf common.Config, s serializer.ISerializer, inputs []string, out io.Writer, set *metrics.Set) error {
	enc := jsonstr.NewStringEncoder(conf.HTMLSafe)
	encodedStrings := set.GetOrCreateCounter("jstr_encoded_strings_total")
	encodedBytes := set.GetOrCreateCounter("jstr_encoded_bytes_total")

	failed := 0
	for i, input := range inputs {
		literal, err := encodeInput(conf, enc, s, input)
		if err != nil {
			failed++
			set.GetOrCreateCounter(fmt.Sprintf(`jstr_encode_errors_total{kind=%q}`, errorKind(err))).Inc()
			fmt.Fprintf(os.Stderr, "input %d: %v\n", i, err)
			continue
		}

		encodedStrings.Inc()
		encodedBytes.Add(len(literal))
		if _, err := fmt.Fprintf(out, "%s\n", literal); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be encoded", failed, len(inputs))
	}
	return nil
}

// encodeInput encodes a single input either as code units or through the serializer
func encodeInput(conf common.Config, enc jsonstr.IStringEncoder, s serializer.ISerializer, input string) ([]byte, error) {
	if !conf.InputUnits {
		return s.Serialize(input)
	}

	units, err := ParseUnits(input)
	if err != nil {
		return nil, err
	}
	var buf []byte
	buf, err = jsonstr.Append(buf, units, enc.Table())
	if err != nil {
		log.Debugf("failed to encode %x: %v", units, err)
		return nil, err
	}
	return buf, nil
}

// errorKind maps an encode error to its metrics label
func errorKind(err error) string {
	switch {
	case errors.Is(err, jsonstr.ErrMalformedSurrogatePair):
		return "malformed_surrogate_pair"
	case errors.Is(err, jsonstr.ErrSurrogateRangeOverflow):
		return "surrogate_range_overflow"
	default:
		return "invalid_input"
	}
}

// readLines reads all lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
