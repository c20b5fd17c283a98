package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestReadInputPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache")
	if err := os.WriteFile(path, []byte("raw"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "raw" {
		t.Fatalf("readInput = %q, want %q", data, "raw")
	}
}

func TestReadInputZstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.zst")

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	compressed := enc.EncodeAll([]byte("payload"), nil)
	enc.Close()
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("readInput = %q, want %q", data, "payload")
	}
}

func TestCreateOutputZstdRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.mp4.zst")
	payload := bytes.Repeat([]byte("media bytes "), 64)

	if err := createOutput(path, payload); err != nil {
		t.Fatalf("createOutput: %v", err)
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %d byte(s), want %d", len(got), len(payload))
	}
}

func TestCreateOutputRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := createOutput(path, []byte("new")); err == nil {
		t.Fatal("expected error for existing file")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Fatalf("existing file modified: %q", data)
	}
}
