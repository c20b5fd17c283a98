package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/applesheeple/tdcache/pkg/cache"
)

func TestOptionsDefaults(t *testing.T) {
	var flags decodeFlags
	opts, err := flags.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.ByteOrder != binary.LittleEndian {
		t.Fatalf("ByteOrder = %v, want little-endian", opts.ByteOrder)
	}
	if opts.MaxSliceParts != cache.DefaultMaxSliceParts {
		t.Fatalf("MaxSliceParts = %d, want %d", opts.MaxSliceParts, cache.DefaultMaxSliceParts)
	}
	if opts.MaxPartSize != cache.DefaultMaxPartSize {
		t.Fatalf("MaxPartSize = %d, want %d", opts.MaxPartSize, cache.DefaultMaxPartSize)
	}
}

func TestOptionsFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tdcache.toml")
	cfg := "byte_order = \"be\"\nmax_slice_parts = 0\nmax_part_size = 1024\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := decodeFlags{config: path}
	opts, err := flags.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.ByteOrder != binary.BigEndian {
		t.Fatalf("ByteOrder = %v, want big-endian", opts.ByteOrder)
	}
	if opts.MaxSliceParts != 0 {
		t.Fatalf("MaxSliceParts = %d, want 0 (disabled)", opts.MaxSliceParts)
	}
	if opts.MaxPartSize != 1024 {
		t.Fatalf("MaxPartSize = %d, want 1024", opts.MaxPartSize)
	}
}

func TestOptionsFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tdcache.toml")
	if err := os.WriteFile(path, []byte("byte_order = \"be\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := decodeFlags{config: path, byteOrder: "le"}
	opts, err := flags.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.ByteOrder != binary.LittleEndian {
		t.Fatalf("ByteOrder = %v, want little-endian from flag", opts.ByteOrder)
	}
}

func TestOptionsRejectsUnknownByteOrder(t *testing.T) {
	flags := decodeFlags{byteOrder: "pdp"}
	if _, err := flags.options(); err == nil {
		t.Fatal("expected error for unknown byte order")
	}
}
