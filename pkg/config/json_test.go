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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rnm/pkg/testutils"
)

func TestJSONParserCanParse(t *testing.T) {
	p := &JSONParser{}
	assert.True(t, p.CanParse(".rnm.json"))
	assert.True(t, p.CanParse("dir/RULES.JSON"))
	assert.False(t, p.CanParse(".rnm.yaml"))
	assert.False(t, p.CanParse("json"))
}

func TestJSONParser(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_config",
			config: `{
				"dry_run": true,
				"rules": [
					{"name": "ext", "expression": "(name).JPG->(name).jpg", "globs": ["*.JPG"]}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.DryRun)
				require.Len(t, cfg.Rules, 1)
				assert.Equal(t, "ext", cfg.Rules[0].Name)
				assert.Equal(t, []string{"*.JPG"}, cfg.Rules[0].Globs)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"rules": [], "force": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "trailing_document",
			config:      `{"rules": []} {"rules": []}`,
			wantErr:     true,
			errContains: "unexpected data after config object",
		},
		{
			name:        "trailing_garbage",
			config:      `{"rules": []}]`,
			wantErr:     true,
			errContains: "unexpected data after config object",
		},
		{
			name:   "trailing_whitespace",
			config: "{\"rules\": []}\n\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Rules)
			},
		},
		{
			name:        "invalid_json",
			config:      `{"rules": [`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := (&JSONParser{}).Parse(testutils.Context(t), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
