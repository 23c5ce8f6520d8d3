package commands

import (
	"errors"
	"testing"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add Buy stamps")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil || cmd.Add.Text != "Buy stamps" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseWithoutSlashPrefix(t *testing.T) {
	cmd, err := Parse("new Weekend trip")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeNew || cmd.New.Title != "Weekend trip" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseCalendar(t *testing.T) {
	cmd, err := Parse("/cal 2024-06-03 Dentist appointment")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Calendar.Date != "2024-06-03" || cmd.Calendar.Text != "Dentist appointment" {
		t.Fatalf("unexpected args: %+v", cmd.Calendar)
	}
}

func TestParseCalendarRejectsBadDate(t *testing.T) {
	_, err := Parse("/cal 03/06/2024 Dentist")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseThemeToggle(t *testing.T) {
	cmd, err := Parse("/theme")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Theme.Name != "" {
		t.Fatalf("bare theme must request a toggle, got %q", cmd.Theme.Name)
	}

	cmd, err = Parse("/theme DARK")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Theme.Name != "dark" {
		t.Fatalf("expected lowercased name, got %q", cmd.Theme.Name)
	}

	if _, err := Parse("/theme sepia"); err == nil {
		t.Fatal("unknown theme name must fail to parse")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		code  ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"   /   ", ErrCodeEmptyInput},
		{"/teleport home", ErrCodeUnknownCommand},
		{"/add", ErrCodeInvalidArgument},
		{"/gen", ErrCodeInvalidArgument},
		{"/cal 2024-06-03", ErrCodeInvalidArgument},
		{"/widget", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Fatalf("%q: expected CommandError, got %v", tc.input, err)
		}
		if cmdErr.Code != tc.code {
			t.Fatalf("%q: expected %s, got %s", tc.input, tc.code, cmdErr.Code)
		}
	}
}

func TestExecuteDispatches(t *testing.T) {
	cmd, err := Parse("/gen plan a garden")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	called := ""
	res, err := Execute(cmd, Handlers{
		Generate: func(args GenerateArgs) (Result, error) {
			called = args.Goal
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if called != "plan a garden" || res.Message != "ok" {
		t.Fatalf("handler not invoked correctly: %q %+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("/theme dark")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
