package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "nbsecon" {
		t.Errorf("Expected root command use to be 'nbsecon', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
	if rootCmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}
	if buf.String() == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expectedCommands := []string{
		"assess",
		"baseline",
		"verify",
		"compare",
		"validate",
		"version",
	}

	registered := rootCmd.Commands()
	for _, expectedCmd := range expectedCommands {
		found := false
		for _, c := range registered {
			if c.Name() == expectedCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command '%s' to be registered with root command", expectedCmd)
		}
	}
}

func TestAssessCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "debug", "format", "out"} {
		if assessCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected assess command to have flag %q", name)
		}
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"invalid-command"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for invalid command")
	}
}
