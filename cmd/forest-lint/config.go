package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds defaults read from a YAML file. Command line flags take
// precedence over it.
//
//	format: json
//	encoding: shift_jis
//	scripting: false
//	errors: true
type config struct {
	Format    string `yaml:"format"`
	Encoding  string `yaml:"encoding"`
	Context   string `yaml:"context"`
	Scripting *bool  `yaml:"scripting"`
	Errors    bool   `yaml:"errors"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	if path == "" {
		return &cfg, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	switch cfg.Format {
	case "", formatOutline, formatJSON:
	default:
		return nil, errors.Errorf("invalid format %q in config %s", cfg.Format, path)
	}
	return &cfg, nil
}

// merge fills the options that were not given on the command line from
// cfg.
func (opts *cmdopts) merge(cfg *config) {
	if opts.Format == "" {
		opts.Format = cfg.Format
	}
	if opts.Format == "" {
		opts.Format = formatOutline
	}
	if opts.Encoding == "" {
		opts.Encoding = cfg.Encoding
	}
	if opts.Context == "" {
		opts.Context = cfg.Context
	}
	if !opts.NoScript && cfg.Scripting != nil && !*cfg.Scripting {
		opts.NoScript = true
	}
	if !opts.Errors {
		opts.Errors = cfg.Errors
	}
}
