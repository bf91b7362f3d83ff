package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewValidateCmd(t *testing.T) {
	cmd := newValidateCmd()

	if !strings.HasPrefix(cmd.Use, "validate") {
		t.Errorf("expected use to start with 'validate', got '%s'", cmd.Use)
	}
}

func TestValidateCmd_ValidDefinition(t *testing.T) {
	dir := t.TempDir()
	path := writeDefinition(t, dir, "component.yaml", `
name: widget
template: "<w/>"
props: [size]
`)

	cmd := newValidateCmd()
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestValidateCmd_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeDefinition(t, dir, "component.yaml", "this is not: valid yaml: [\n")

	cmd := newValidateCmd()
	cmd.SetArgs([]string{path})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateCmd_WarningsFail(t *testing.T) {
	dir := t.TempDir()
	path := writeDefinition(t, dir, "component.yaml", `
name: widget
props: 42
`)

	cmd := newValidateCmd()
	cmd.SetArgs([]string{path})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for definition with warnings")
	}
	if !strings.Contains(err.Error(), "Warnings:") {
		t.Errorf("expected warning listing in error, got: %v", err)
	}
}

func TestValidateCmd_NonExistentFile(t *testing.T) {
	cmd := newValidateCmd()
	cmd.SetArgs([]string{"/nonexistent/component.yaml"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestValidateCmd_CyclicExtends(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "a.yaml", "extends: ./b.yaml\n")
	writeDefinition(t, dir, "b.yaml", "extends: ./a.yaml\n")

	cmd := newValidateCmd()
	cmd.SetArgs([]string{dir + "/a.yaml"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for cyclic extends")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("expected circular reference message, got: %v", err)
	}
}
