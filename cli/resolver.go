package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/scenic/pkg"
)

// ErrConfig reports a configuration file that cannot be parsed.
var ErrConfig = pkg.NewError("invalid configuration file")

// load is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys name flags. Nested mappings join their keys with hyphens, so both
//
//	log-level: debug
//
// and
//
//	log:
//	  level: debug
//
// set --log-level. Underscores may stand in for hyphens. Scalars are passed
// to kong as strings and sequences as lists of strings. Command-line flags
// override configuration values.
func load(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrConfig.Wrap(err)
	}

	c := make(config)
	c.flatten("", m)

	return c, nil
}

// config implements [kong.Resolver] over flattened configuration keys.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := v.(type) {
		case map[string]any:
			c.flatten(key, v)
		case []any:
			list := make([]any, len(v))
			for i, e := range v {
				list[i] = scalar(e)
			}

			c[key] = list
		case nil:
		default:
			c[key] = scalar(v)
		}
	}
}

// scalar renders v as kong expects flag values from a resolver.
func scalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	return nil, nil
}
