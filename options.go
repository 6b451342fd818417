package forest

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identScripting struct{}

// ParseOption configures Parse and ParseFragment.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithEncoding specifies the charset of the input. Input is decoded to
// UTF-8 before parsing. The default is to treat the input as UTF-8.
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithScripting controls whether the parser behaves as if scripting is
// enabled, which changes how <noscript> content is parsed. The default
// is true.
func WithScripting(v bool) ParseOption {
	return &parseOption{option.New(identScripting{}, v)}
}

type parseConfig struct {
	encoding  string
	scripting bool
}

func newParseConfig(options []ParseOption) parseConfig {
	cfg := parseConfig{scripting: true}
	for _, o := range options {
		switch o.Ident() {
		case identEncoding{}:
			cfg.encoding = o.Value().(string)
		case identScripting{}:
			cfg.scripting = o.Value().(bool)
		}
	}
	return cfg
}
