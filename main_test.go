package main

import (
	"testing"

	"github.com/automoto/echoes-of-ember/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		arg     string
		want    config.LevelID
		wantErr bool
	}{
		{"1", config.LevelAshenForest, false},
		{"2", config.LevelMoltenDepths, false},
		{"molten_depths", config.LevelMoltenDepths, false},
		{"Ashen_Forest", config.LevelAshenForest, false},
		{"0", config.LevelNone, true},
		{"3", config.LevelNone, true},
		{"volcano", config.LevelNone, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) err = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
