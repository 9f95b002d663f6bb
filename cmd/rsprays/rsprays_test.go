package main

import(
	"testing"

	"github.com/abworrall/rsprays/pkg/retinex"
)

func TestApplyPositional(t *testing.T) {
	cfg := retinex.NewConfig()
	if err := applyPositional(&cfg, []string{"2", "100", "1"}); err != nil {
		t.Fatalf("applyPositional: %v", err)
	}
	if cfg.Sprays != 2 || cfg.SpraySize != 100 || cfg.KernelSize != 1 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.RowsStep != 10 || cfg.ColsStep != 10 || cfg.UpperBound != 0 {
		t.Errorf("unset args changed: %+v", cfg)
	}

	cfg = retinex.NewConfig()
	if err := applyPositional(&cfg, []string{"1", "225", "5", "4", "6", "4095.5"}); err != nil {
		t.Fatalf("applyPositional: %v", err)
	}
	if cfg.RowsStep != 4 || cfg.ColsStep != 6 || cfg.UpperBound != 4095.5 {
		t.Errorf("got %+v", cfg)
	}
}

func TestApplyPositional_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"one"},
		{"1", "2.5"},
		{"1", "225", "5", "10", "10", "max"},
		{"1", "2", "3", "4", "5", "6", "7"},
	} {
		cfg := retinex.NewConfig()
		if err := applyPositional(&cfg, args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(nil)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg != retinex.NewConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
