// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package config holds floodledger's on-disk node configuration, loaded
// from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full set of settings a node reads at startup. Fields not
// present in the file keep their Go zero value; callers typically start
// from Default and override via CLI flags.
type Config struct {
	Port     uint16 `toml:"port"`
	BootNode bool   `toml:"boot_node"`
}

// Default returns the configuration a freshly initialized boot node uses.
func Default() Config {
	return Config{
		Port:     60000,
		BootNode: true,
	}
}

// Load reads and parses a TOML config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
