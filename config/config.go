/*
fixwire — FIX protocol wire-format tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional fixwire.toml file. Flags override whatever is set
// here; the zero value plus defaults is a working configuration.
type Config struct {
	Colour    string         `toml:"colour"` // auto | yes | no
	Verify    bool           `toml:"verify"`
	Obfuscate bool           `toml:"obfuscate"`
	Sensitive []SensitiveTag `toml:"sensitive"`
}

// SensitiveTag names one tag whose values the obfuscator must alias.
type SensitiveTag struct {
	Tag  int    `toml:"tag"`
	Name string `toml:"name"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{Colour: "auto"}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Colour {
	case "auto", "yes", "no":
	default:
		return fmt.Errorf("invalid colour %q (want auto, yes or no)", cfg.Colour)
	}

	for _, s := range cfg.Sensitive {
		if s.Tag <= 0 {
			return fmt.Errorf("invalid sensitive tag %d", s.Tag)
		}
		if s.Name == "" {
			return fmt.Errorf("sensitive tag %d has no alias name", s.Tag)
		}
	}

	return nil
}

// SensitiveTags returns the sensitive-tag table in the form the obfuscator
// wants. Later entries win on duplicate tags.
func (c Config) SensitiveTags() map[int]string {
	out := make(map[int]string, len(c.Sensitive))
	for _, s := range c.Sensitive {
		out[s.Tag] = s.Name
	}
	return out
}
