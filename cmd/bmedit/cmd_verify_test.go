package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifyCmdReportsObjectCount(t *testing.T) {
	setConfigForTest(t, writeSceneCmdProject(t, t.TempDir()))

	out, err := runCmdForTest(t, newVerifyCmd())
	if err != nil {
		t.Fatalf("verify Execute: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "ok: 2 objects decoded against 3 types") {
		t.Fatalf("verify output = %q", out)
	}
}

func TestVerifyCmdSurfacesMissingType(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSceneCmdProject(t, dir)
	writeSceneCmdFile(t, filepath.Join(dir, "typeids.json"), []byte(`{}`))
	setConfigForTest(t, cfgPath)

	_, err := runCmdForTest(t, newVerifyCmd())
	if err == nil {
		t.Fatal("verify command should fail without the alias table")
	}
	if !strings.Contains(err.Error(), "object 0") {
		t.Fatalf("verify error = %q, want the failing object index", err.Error())
	}
}
