package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "timezone: Asia/Tokyo\nbatch_size: 64\nlog_format: json\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Timezone != "Asia/Tokyo" || c.BatchSize != 64 || c.LogFormat != "json" {
		t.Errorf("unexpected config: %+v", c)
	}
	loc, err := c.Location()
	if err != nil {
		t.Fatal(err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("location = %s", loc)
	}
}

func TestLoadFromFile_UnknownTimezone(t *testing.T) {
	path := writeConfig(t, "timezone: Mars/Olympus_Mons\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLoadFromFile_NegativeBatchSize(t *testing.T) {
	path := writeConfig(t, "batch_size: -5\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for negative batch size")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	c := Config{LogFormat: "text"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.BatchSize != DefaultBatchSize {
		t.Errorf("expected default batch size, got %d", c.BatchSize)
	}
	if c.LogFormat != "text" {
		t.Errorf("flag value overwritten: %q", c.LogFormat)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	in := writeConfig(t, "")

	c := Config{}
	if err := c.Validate(); err == nil {
		t.Error("expected error without --in")
	}

	c = Config{InputPath: in, LogFormat: "xml"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}

	c = Config{InputPath: in}
	if err := c.ValidateWithOutput(); err == nil {
		t.Error("expected error without --out")
	}
	c.OutputPath = in
	if err := c.ValidateWithOutput(); err == nil {
		t.Error("expected error when --out equals --in")
	}

	c = Config{InputPath: in}
	if err := c.ValidateWithDSN(); err == nil {
		t.Error("expected error without DSN")
	}
	c.DSN = "postgres://localhost/x"
	if err := c.ValidateWithDSN(); err != nil {
		t.Errorf("ValidateWithDSN: %v", err)
	}
}
