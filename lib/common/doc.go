// Package common provides configuration structures and the logging setup
// shared across the jstr command line tool and libraries.
//
// Key Components:
//
//   - Config: Configuration of the encode command (escape table, serializer,
//     input format, logging), with a formatted String representation.
//
//   - PerfConfig: Configuration of the perf command.
//
//   - Logger: Custom logging implementation that plugs into Dragonboat's
//     logger package, so every package logger (bitop, compat, ...) shares one format.
package common
