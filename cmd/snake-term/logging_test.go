package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	log.Println("test message")
	f.Close()

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}
