package main

import "testing"

func TestParseArgs_SupportsFlagsAndCommandWithoutDashDash(t *testing.T) {
	opts, cmd, err := parseArgs([]string{
		"--hidden",
		"--lines", "30",
		"--dir", "Assets",
		"sh", "-c", "sdkbanner",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !opts.hidden {
		t.Fatalf("expected hidden true")
	}
	if opts.lines != 30 {
		t.Fatalf("expected lines=30, got %d", opts.lines)
	}
	if opts.dir != "Assets" {
		t.Fatalf("expected dir=Assets, got %q", opts.dir)
	}
	if len(cmd) != 3 || cmd[0] != "sh" || cmd[1] != "-c" || cmd[2] != "sdkbanner" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseArgs_Defaults(t *testing.T) {
	opts, cmd, err := parseArgs([]string{"--keep", "--", "sdkbanner", "hide"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !opts.keepProj || opts.noSDK || opts.hidden {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.lines != defaultLines {
		t.Fatalf("expected default lines, got %d", opts.lines)
	}
	if len(cmd) != 2 || cmd[0] != "sdkbanner" || cmd[1] != "hide" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseArgs_RequiresCommand(t *testing.T) {
	_, _, err := parseArgs([]string{"--no-sdk"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseArgs_RejectsUnsafeDirs(t *testing.T) {
	if _, _, err := parseArgs([]string{"--dir", "/abs", "sdkbanner"}); err == nil {
		t.Fatalf("expected error for absolute dir")
	}
	if _, _, err := parseArgs([]string{"--dir", "../escape", "sdkbanner"}); err == nil {
		t.Fatalf("expected error for dir with ..")
	}
	if _, _, err := parseArgs([]string{"--lines", "-1", "sdkbanner"}); err == nil {
		t.Fatalf("expected error for negative lines")
	}
}
