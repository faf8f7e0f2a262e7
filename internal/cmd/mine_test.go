package cmd

import (
	"testing"

	"github.com/saint2706/spatialseqmine/internal/config"
)

func TestApplyConfigDefaultsFillsUnsetFlagsOnly(t *testing.T) {
	saved := mineFlags
	defer func() { mineFlags = saved }()

	mineFlags = struct {
		input     string
		neighbors string
		minSup    string
		sep       string
		maxLength int
		maxGap    int
		output    string
		jsonOut   bool
		cfgPath   string
		verbose   bool
		jobs      []string
	}{minSup: "0.5", sep: "\t"}

	if err := mineCmd.Flags().Set("min-sup", "0.75"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer mineCmd.Flags().Set("min-sup", "0.5")
	mineFlags.minSup = "0.75"

	cfg := &config.Config{
		Input:  "db.txt",
		MinSup: "0.9",
		Sep:    ",",
	}
	applyConfigDefaults(mineCmd, cfg)

	if mineFlags.input != "db.txt" {
		t.Fatalf("expected input to be filled from config, got %q", mineFlags.input)
	}
	if mineFlags.minSup != "0.75" {
		t.Fatalf("explicitly-set flag should not be overridden by config, got %q", mineFlags.minSup)
	}
	if mineFlags.sep != "," {
		t.Fatalf("expected sep to be filled from config, got %q", mineFlags.sep)
	}
}
