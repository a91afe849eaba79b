package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lava-tower/internal/config"
)

func TestCheckConfig(t *testing.T) {
	defer func() { flagConfig = "" }()

	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name     string
		path     string
		variants []string
		wantErr  bool
		want     error
	}{
		{"no custom config", "", nil, false, nil},
		{"valid for every variant", write("ok.yaml", "player:\n  lives: 4\n"), nil, false, nil},
		{"invalid", write("lives.yaml", "player:\n  lives: 0\n"), []string{config.VariantClassic}, true, config.ErrInvalid},
		{"layout only broken for classic", write("spacing.yaml", "platforms:\n  spacing: 55\n"), nil, true, config.ErrInvalid},
		{"layout fine for plus", write("spacing.yaml", "platforms:\n  spacing: 55\n"), []string{config.VariantPlus}, false, nil},
		{"missing file", filepath.Join(dir, "missing.yaml"), []string{config.VariantPlus}, true, os.ErrNotExist},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagConfig = tc.path
			err := checkConfig(tc.variants...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("checkConfig() = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("checkConfig() = %v, want %v", err, tc.want)
			}
		})
	}
}
