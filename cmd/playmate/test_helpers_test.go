package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"playmate/internal/config"
	"playmate/internal/testsupport"
)

const (
	intakeDB = "#4\r\n" +
		"PLAY_ID text-child_id,birthdate,test_date,lang1,lang2\r\n" +
		"00:00:00:111,00:00:00:222,(PLAY_899_43530,03/10/2018,03/06/2020,e,.)\r\n" +
		"missing_child text-reason\r\n" +
		"00:00:05:000,00:00:09:000,(sleeping)\r\n"
	traTemplateDB = "#4\r\ntransc_id text-child_id\r\n"
	qaTemplateDB  = "#4\r\nPLAY_ID text-child_id,birthdate,test_date,lang1,lang2\r\nmissing_child text-reason\r\n"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	dataDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))

	configPath := filepath.Join(base, "playmate.toml")
	writeTestConfig(t, configPath, cfg)

	dataDir := filepath.Join(base, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	return &cliTestEnv{cfg: cfg, configPath: configPath, dataDir: dataDir}
}

func (e *cliTestEnv) writeOPF(t *testing.T, name, db string) string {
	t.Helper()
	return testsupport.WriteOPF(t, filepath.Join(e.dataDir, name), db, testsupport.Ptr("project"))
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
