package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Encoder configuration struct
// --------------------------------------------------------------------------

// Config holds the configuration of the encode command
type Config struct {
	// HTMLSafe selects the HTML-safe escape table (gson default)
	HTMLSafe bool

	// Serializer is the name of the host serializer (gson, jsoniter, std)
	Serializer string

	// InputUnits reads the input as comma separated hex UTF-16 code units
	InputUnits bool

	// ReadStdin encodes stdin line by line instead of the arguments
	ReadStdin bool

	// Metrics prints the encode counters in Prometheus text format when done
	Metrics bool

	// Logging configuration
	LogLevel string
}

// EscapeTableName returns the name of the selected escape table
func (c *Config) EscapeTableName() string {
	if c.HTMLSafe {
		return "html-safe"
	}
	return "default"
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Encoder")
	addField("Escape Table", c.EscapeTableName())
	addField("Serializer", c.Serializer)

	addSection("Input")
	addField("Code Units", strconv.FormatBool(c.InputUnits))
	addField("Stdin", strconv.FormatBool(c.ReadStdin))

	addSection("Logging")
	addField("Log Level", c.LogLevel)
	addField("Metrics", strconv.FormatBool(c.Metrics))

	return sb.String()
}

// --------------------------------------------------------------------------
// Perf configuration struct
// --------------------------------------------------------------------------

// PerfConfig holds the configuration of the perf command
type PerfConfig struct {
	Threads     int
	SizeBytes   int
	Serializers []string
	Skip        []string
	CSVPath     string
}

// ShouldSkip reports whether the named test is in the skip list
func (c *PerfConfig) ShouldSkip(test string) bool {
	for _, s := range c.Skip {
		if strings.TrimSpace(s) == test {
			return true
		}
	}
	return false
}

// String returns a formatted string representation of the perf configuration
func (c *PerfConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Perf Configuration")
	addField("Threads", strconv.Itoa(c.Threads))
	addField("Input Size", fmt.Sprintf("%d bytes", c.SizeBytes))
	addField("Skip", strings.Join(c.Skip, ","))
	if c.CSVPath != "" {
		addField("CSV", c.CSVPath)
	}

	addSection("Serializers")
	for i, name := range c.Serializers {
		addField(strconv.Itoa(i), name)
	}

	return sb.String()
}
