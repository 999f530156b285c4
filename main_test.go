package main

import (
	"testing"

	"github.com/atomicstack/panel-control/internal/app"
	"github.com/atomicstack/panel-control/internal/config"
	"github.com/atomicstack/panel-control/internal/panel"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	pcfg := panel.DefaultConfig()
	pcfg.Version = "v1.2.3"
	cfg := config.Config{
		App: app.Config{
			Panel:     pcfg,
			FilesRoot: "/sd",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"files":     "/sd",
			"queueSize": "8",
		},
		Args: []string{"-files", "/sd"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["files"] != "/sd" {
		t.Fatalf("expected files flag %q, got %v", "/sd", flagsValue["files"])
	}
	if flagsValue["queueSize"] != "8" {
		t.Fatalf("expected queue size 8, got %v", flagsValue["queueSize"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["version"] != "v1.2.3" {
		t.Fatalf("expected version v1.2.3, got %v", payload["version"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.FilesRoot != cfg.App.FilesRoot {
		t.Fatalf("expected files root %q, got %q", cfg.App.FilesRoot, cfgValue.App.FilesRoot)
	}
}

func TestVersionIsNeverEmpty(t *testing.T) {
	if version() == "" {
		t.Fatalf("expected a version string")
	}
}
