// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/rnm/pkg/mrp"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// decoder is the streaming shape shared by the yaml.v3 and encoding/json decoders
type decoder interface {
	Decode(v any) error
}

// decode reads one Config document from dec. Validation is left to Load.
func decode(format string, dec decoder) (*Config, error) {
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing %s: %w", format, err)
	}
	return &cfg, nil
}

// DefaultFileNames are looked up in order by FindFile
var DefaultFileNames = []string{".rnm.yaml", ".rnm.yml", ".rnm.hcl", ".rnm.json"}

// 📏 Rule is a named rename expression and the files it applies to
type Rule struct {
	Name       string   `json:"name" yaml:"name"`
	Expression string   `json:"expression" yaml:"expression"`
	Globs      []string `json:"globs,omitempty" yaml:"globs,omitempty"`
	Ignore     []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Paths      []string `json:"paths,omitempty" yaml:"paths,omitempty"`

	replacer *mrp.Replacer
}

// Replacer returns the compiled expression, nil before Validate
func (r *Rule) Replacer() *mrp.Replacer {
	return r.replacer
}

// 📚 Config represents the complete configuration
type Config struct {
	Parallel      bool   `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	Workers       int    `json:"workers,omitempty" yaml:"workers,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	FailOnNoMatch bool   `json:"fail_on_no_match,omitempty" yaml:"fail_on_no_match,omitempty"`
	Rules         []Rule `json:"rules" yaml:"rules"`

	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Int("rules", len(cfg.Rules)).Msg("configuration loaded")
	return cfg, nil
}

// 🔎 FindFile returns the first default config file in dir, or "" when there is none
func FindFile(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", errors.Errorf("checking %s: %w", p, err)
		}
		if !info.IsDir() {
			return p, nil
		}
	}
	return "", nil
}

// 🔍 Validate checks the configuration and compiles every rule expression
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}

	seen := make(map[string]bool)
	for i := range cfg.Rules {
		rule := &cfg.Rules[i]

		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[rule.Name] {
			return errors.Errorf("rule %q: duplicate name", rule.Name)
		}
		seen[rule.Name] = true

		if rule.Expression == "" {
			return errors.Errorf("rule %q: expression is required", rule.Name)
		}
		if len(rule.Globs) == 0 && len(rule.Paths) == 0 {
			return errors.Errorf("rule %q: globs or paths are required", rule.Name)
		}

		replacer, err := mrp.New(rule.Expression)
		if err != nil {
			return &RuleError{Rule: rule.Name, Expression: rule.Expression, Err: err}
		}
		rule.replacer = replacer
	}

	return nil
}

// 🎯 Select returns the named rules in the given order, or every rule when no name is given
func (cfg *Config) Select(names ...string) ([]Rule, error) {
	if len(names) == 0 {
		return cfg.Rules, nil
	}

	out := make([]Rule, 0, len(names))
	for _, name := range names {
		found := false
		for _, rule := range cfg.Rules {
			if rule.Name == name {
				out = append(out, rule)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown rule %q; available: %s", name, strings.Join(cfg.RuleNames(), ", "))
		}
	}
	return out, nil
}

// RuleNames returns rule names in file order
func (cfg *Config) RuleNames() []string {
	names := make([]string, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		names = append(names, rule.Name)
	}
	return names
}

// Dir is the directory relative globs and paths resolve against
func (cfg *Config) Dir() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "sequential"
	if cfg.Parallel {
		mode = "parallel"
	}
	return fmt.Sprintf("%d rules (%s, workers=%d, dry_run=%t)", len(cfg.Rules), mode, cfg.Workers, cfg.DryRun)
}

// ❌ RuleError reports a rule whose expression does not compile
type RuleError struct {
	Rule       string
	Expression string
	Err        error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
