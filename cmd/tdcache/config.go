package main

import (
	"encoding/binary"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/applesheeple/tdcache/pkg/cache"
)

// fileConfig mirrors the optional TOML config file. Pointer fields
// distinguish "unset" from an explicit zero (zero disables a bound).
type fileConfig struct {
	ByteOrder     string  `toml:"byte_order"`
	MaxSliceParts *uint32 `toml:"max_slice_parts"`
	MaxPartSize   *uint32 `toml:"max_part_size"`
}

// decodeFlags are the decoding knobs shared by recover and inspect.
type decodeFlags struct {
	config    string
	byteOrder string
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&f.byteOrder, "byte-order", "", "header byte order: le or be (default le)")
}

// options resolves decoding options: built-in defaults, then the config
// file, then flags.
func (f *decodeFlags) options() (cache.Options, error) {
	opts := cache.DefaultOptions()

	if f.config != "" {
		var cfg fileConfig
		if _, err := toml.DecodeFile(f.config, &cfg); err != nil {
			return cache.Options{}, fmt.Errorf("read config %s: %w", f.config, err)
		}
		if cfg.ByteOrder != "" {
			order, err := parseByteOrder(cfg.ByteOrder)
			if err != nil {
				return cache.Options{}, fmt.Errorf("config %s: %w", f.config, err)
			}
			opts.ByteOrder = order
		}
		if cfg.MaxSliceParts != nil {
			opts.MaxSliceParts = *cfg.MaxSliceParts
		}
		if cfg.MaxPartSize != nil {
			opts.MaxPartSize = *cfg.MaxPartSize
		}
	}

	if f.byteOrder != "" {
		order, err := parseByteOrder(f.byteOrder)
		if err != nil {
			return cache.Options{}, err
		}
		opts.ByteOrder = order
	}
	return opts, nil
}

func parseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "le", "little":
		return binary.LittleEndian, nil
	case "be", "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q (want le or be)", name)
}
