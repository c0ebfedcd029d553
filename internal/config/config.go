// Package config loads the patterns command configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/patterns/internal/logging"
	"github.com/go-leo/patterns/internal/render"
	"github.com/go-leo/patterns/visitor"
)

// Config is the patterns command configuration.
type Config struct {
	Log   logging.Config `koanf:"log"`
	Visit VisitConfig    `koanf:"visit"`
}

// VisitConfig configures the visit command.
type VisitConfig struct {
	// Elements names the components to walk, in order.
	Elements []string `koanf:"elements"`
	// Visitors names the visitors each walk uses, in order.
	Visitors []string `koanf:"visitors"`
	// Format is text, json or protojson.
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: logging.NewDefaultConfig(),
		Visit: VisitConfig{
			Elements: []string{"a", "b"},
			Visitors: []string{visitor.NameConcreteVisitor1, visitor.NameConcreteVisitor2},
			Format:   string(render.Text),
		},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	cfg.Visit.Elements = splitList(cfg.Visit.Elements)
	if len(cfg.Visit.Elements) == 0 {
		cfg.Visit.Elements = def.Visit.Elements
	}
	cfg.Visit.Visitors = splitList(cfg.Visit.Visitors)
	if len(cfg.Visit.Visitors) == 0 {
		cfg.Visit.Visitors = def.Visit.Visitors
	}
	if cfg.Visit.Format == "" {
		cfg.Visit.Format = def.Visit.Format
	}
}

// splitList accepts both YAML lists and comma separated environment values.
func splitList(values []string) []string {
	var list []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if err := c.Visit.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("visit: %w", err))
	}
	return errors.Join(errs...)
}

func (c VisitConfig) Validate() error {
	var errs []error
	unknownElements := slicex.IndexesFunc(c.Elements, func(name string) bool {
		_, err := visitor.ParseComponent(name)
		return err != nil
	})
	for _, i := range unknownElements {
		errs = append(errs, fmt.Errorf("elements[%d]: %w: %q", i, visitor.ErrUnknownComponent, c.Elements[i]))
	}
	unknownVisitors := slicex.IndexesFunc(c.Visitors, func(name string) bool {
		_, err := visitor.NewVisitor(name, nil)
		return err != nil
	})
	for _, i := range unknownVisitors {
		errs = append(errs, fmt.Errorf("visitors[%d]: %w: %q", i, visitor.ErrUnknownVisitor, c.Visitors[i]))
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	return errors.Join(errs...)
}
