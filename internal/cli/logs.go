// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"code.hybscloud.com/eff"
)

// LogEntry is one parsed log line.
type LogEntry struct {
	Timestamp time.Time
	Level     string
	Message   string
}

// IsError reports whether the entry is an error-class log.
func (e LogEntry) IsError() bool {
	switch strings.ToUpper(e.Level) {
	case "ERROR", "FATAL", "CRITICAL":
		return true
	}
	return false
}

// Expected line format: 2024-01-15 10:30:45 ERROR Database connection failed
var logLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2})\s+(\w+)\s+(.+)$`)

// ParseLogLine parses one log line into an entry, as a Result.
func ParseLogLine(line string) eff.Result[LogEntry] {
	match := logLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return eff.Failure[LogEntry](fmt.Errorf("invalid log format: %s", line))
	}
	ts, err := time.Parse("2006-01-02 15:04:05", match[1])
	if err != nil {
		return eff.Failure[LogEntry](fmt.Errorf("parse timestamp: %w", err))
	}
	return eff.Success(LogEntry{Timestamp: ts, Level: match[2], Message: match[3]})
}

// LogsOptions holds flags for the logs command.
type LogsOptions struct {
	*RootOptions
	Level string
	Out   string
}

// NewLogsCommand creates the logs command.
func NewLogsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "logs <file>",
		Short: "Process a log file as a lazy pipeline",
		Long: `Read a log file, parse each line, and report counts per level.

The whole pipeline — file read, parsing, filtering, aggregation — is
described first and executed once at the end.

Example:
  effpipe logs ./app.log
  effpipe logs ./app.log --level ERROR --out report.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Level, "level", "", "only report entries with this level")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the report to a file instead of stdout")

	return cmd
}

func runLogs(opts *LogsOptions, path string, cmd *cobra.Command) error {
	slog.Debug("describing log pipeline", "path", path, "level", opts.Level)

	report := eff.Bind(eff.ReadLines(path), func(lines eff.Stream[string]) eff.IO[string] {
		return eff.Pure(buildReport(lines, opts.Level))
	})

	emit := eff.Bind(report, func(text string) eff.IO[struct{}] {
		if opts.Out != "" {
			return eff.WriteFile(opts.Out, text)
		}
		return eff.PrintLine(cmd.OutOrStdout(), strings.TrimSuffix(text, "\n"))
	})

	// Single terminal call site: everything above is a description.
	if _, err := emit.Run(); err != nil {
		return fmt.Errorf("log pipeline failed: %w", err)
	}
	if opts.Out != "" {
		slog.Info("report written", "path", opts.Out)
	}
	return nil
}

// buildReport traverses the line stream once per aggregate and formats the
// per-level counts plus the malformed-line total.
func buildReport(lines eff.Stream[string], onlyLevel string) string {
	nonEmpty := lines.Filter(func(l string) bool { return strings.TrimSpace(l) != "" })
	parsed := eff.MapStream(nonEmpty, ParseLogLine)

	entries := eff.MapStream(
		parsed.Filter(eff.Result[LogEntry].IsSuccess),
		func(r eff.Result[LogEntry]) LogEntry {
			entry, _ := r.Get()
			return entry
		},
	)
	if onlyLevel != "" {
		want := strings.ToUpper(onlyLevel)
		entries = entries.Filter(func(e LogEntry) bool {
			return strings.ToUpper(e.Level) == want
		})
	}

	counts := eff.FoldStream(entries, map[string]int{}, func(acc map[string]int, e LogEntry) map[string]int {
		acc[strings.ToUpper(e.Level)]++
		return acc
	})
	malformed := parsed.Filter(eff.Result[LogEntry].IsFailure).Count()

	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	var b strings.Builder
	b.WriteString("log report\n")
	total := 0
	for _, level := range levels {
		fmt.Fprintf(&b, "  %-8s %d\n", level, counts[level])
		total += counts[level]
	}
	fmt.Fprintf(&b, "  total    %d\n", total)
	fmt.Fprintf(&b, "  malformed %d\n", malformed)
	return b.String()
}
