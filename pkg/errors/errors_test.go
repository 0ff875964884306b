package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
		want   bool
	}{
		{"404 is not found", 404, ErrNotFound, true},
		{"429 is rate limited", 429, ErrRateLimited, true},
		{"503 is upstream unavailable", 503, ErrUpstreamUnavailable, true},
		{"500 is upstream unavailable", 500, ErrUpstreamUnavailable, true},
		{"404 is not rate limited", 404, ErrRateLimited, false},
		{"200 matches nothing", 200, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError("orcaslicer", tt.status, "boom")
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", err, tt.target, got, tt.want)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &APIError{Source: "uvtools", Message: "fetch failed", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	if WrapIO("write", "/tmp/x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("json", "machine.json", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapAPI("orcaslicer", 0, nil) != nil {
		t.Error("WrapAPI(nil) should be nil")
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError("json", "Ender-3.json", "unexpected end of input", nil)
	want := "parse error in json file Ender-3.json: unexpected end of input"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	bare := NewParseError("tuple", "", "no match", nil)
	if bare.Error() != "tuple parse error: no match" {
		t.Errorf("got %q", bare.Error())
	}
}

func TestIOErrorWrapChain(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WrapIO("write", "data/printers.json", cause)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("expected *IOError")
	}
	if ioErr.Path != "data/printers.json" {
		t.Errorf("path = %q", ioErr.Path)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not preserved")
	}
}
