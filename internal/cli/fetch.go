// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/eff"
	"code.hybscloud.com/eff/httpx"
)

// FetchConfig is the pipeline description consumed by the fetch command.
type FetchConfig struct {
	URLs    []string
	Workers int
	Timeout time.Duration
	Headers map[string]string
	Auth    string
	Retry   int
}

// fetchConfigYAML is the on-disk form; timeout is a duration string
// ("10s", "1m30s").
type fetchConfigYAML struct {
	URLs    []string          `yaml:"urls"`
	Workers int               `yaml:"workers,omitempty"`
	Timeout string            `yaml:"timeout,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Auth    string            `yaml:"auth,omitempty"`
	Retry   int               `yaml:"retry,omitempty"`
}

// LoadFetchConfig parses and validates a fetch pipeline config.
func LoadFetchConfig(data []byte) (FetchConfig, error) {
	raw := fetchConfigYAML{Workers: 5}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return FetchConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if len(raw.URLs) == 0 {
		return FetchConfig{}, fmt.Errorf("config has no urls")
	}
	if raw.Workers < 1 {
		return FetchConfig{}, fmt.Errorf("workers must be >= 1, got %d", raw.Workers)
	}
	cfg := FetchConfig{
		URLs:    raw.URLs,
		Workers: raw.Workers,
		Headers: raw.Headers,
		Auth:    raw.Auth,
		Retry:   raw.Retry,
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return FetchConfig{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

// FetchOptions holds flags for the fetch command.
type FetchOptions struct {
	*RootOptions
	Workers int
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FetchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fetch <config.yaml>",
		Short: "Fetch a batch of URLs on a bounded worker pool",
		Long: `Describe a batch of HTTP requests from a yaml config and execute
them in parallel on a fixed-size worker pool. A failing request never
aborts its siblings; each outcome is reported individually.

Config format:
  urls:
    - https://example.com/a
    - https://example.com/b
  workers: 4
  timeout: 10s
  headers:
    Accept: application/json
  retry: 3

Example:
  effpipe fetch ./pipeline.yaml
  effpipe fetch ./pipeline.yaml --workers 8`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "override the configured worker count")

	return cmd
}

func runFetch(opts *FetchOptions, configPath string, cmd *cobra.Command) error {
	// The config read is itself part of the described pipeline.
	pipeline := eff.Bind(eff.ReadFile(configPath), func(raw string) eff.IO[[]eff.Result[httpx.Response]] {
		cfg, err := LoadFetchConfig([]byte(raw))
		if err != nil {
			return eff.Fail[[]eff.Result[httpx.Response]](err)
		}
		workers := cfg.Workers
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		slog.Debug("describing fetch pipeline", "urls", len(cfg.URLs), "workers", workers)

		stream := httpx.FromURLs(httpx.Client(nil), cfg.URLs)
		if cfg.Timeout > 0 {
			stream = stream.MapRequest(func(r httpx.Request) httpx.Request {
				return r.WithTimeout(cfg.Timeout)
			})
		}
		if len(cfg.Headers) > 0 {
			stream = stream.WithHeaders(cfg.Headers)
		}
		if cfg.Auth != "" {
			stream = stream.WithAuth(cfg.Auth)
		}
		if cfg.Retry > 1 {
			stream = stream.WithRetry(cfg.Retry)
		}
		return stream.ExecuteParallel(workers)
	})

	results, err := pipeline.Run()
	if err != nil {
		return fmt.Errorf("fetch pipeline failed: %w", err)
	}

	out := cmd.OutOrStdout()
	succeeded := 0
	for _, r := range results {
		line := eff.MatchResult(r,
			func(err error) string { return fmt.Sprintf("FAIL %v", err) },
			func(resp httpx.Response) string {
				return fmt.Sprintf("%-4d %s (%d bytes)", resp.StatusCode, resp.Request.URL, len(resp.Body))
			},
		)
		fmt.Fprintln(out, line)
		if r.IsSuccess() {
			succeeded++
		}
	}
	fmt.Fprintf(out, "%d/%d succeeded\n", succeeded, len(results))
	return nil
}
