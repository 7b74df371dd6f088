package classify

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
		wantErr  error
		wantMsg  string
	}{
		{name: "empty", input: "", wantErr: ErrEmptyInput, wantMsg: MsgEmptyInput},
		{name: "whitespace only", input: " \t\n  ", wantErr: ErrEmptyInput, wantMsg: MsgEmptyInput},
		{name: "simple headline", input: "Hello World", wantText: "Hello World"},
		{name: "trimmed", input: "  Hello World\n", wantText: "Hello World"},
		{name: "byte order mark only", input: "\uFEFF", wantErr: ErrEmptyInput, wantMsg: MsgEmptyInput},
		{name: "byte order mark and spaces", input: " \uFEFF ", wantErr: ErrEmptyInput, wantMsg: MsgEmptyInput},
		{name: "leading byte order mark", input: "\uFEFFHello", wantText: "Hello"},
		{name: "exactly max", input: strings.Repeat("a", MaxTextLength), wantText: strings.Repeat("a", MaxTextLength)},
		{name: "one over max", input: strings.Repeat("a", MaxTextLength+1), wantErr: ErrTooLong, wantMsg: MsgTooLong},
		{name: "padding does not count", input: "  " + strings.Repeat("a", MaxTextLength) + "  ", wantText: strings.Repeat("a", MaxTextLength)},
		{name: "multibyte counted as characters", input: strings.Repeat("é", MaxTextLength), wantText: strings.Repeat("é", MaxTextLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if msg := UserMessage(err, ""); msg != tt.wantMsg {
					t.Errorf("Expected message %q, got %q", tt.wantMsg, msg)
				}
				if !IsLocal(err) {
					t.Error("Validation errors must be local")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.wantText {
				t.Errorf("Expected %q, got %q", tt.wantText, got)
			}
		})
	}
}

func TestTooLongMessage(t *testing.T) {
	if MsgTooLong != "Text exceeds maximum length of 5000 characters" {
		t.Errorf("Unexpected too-long message: %q", MsgTooLong)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		count int
		want  CounterTier
	}{
		{0, CounterNormal},
		{11, CounterNormal},
		{4000, CounterNormal},
		{4001, CounterWarn},
		{4500, CounterWarn},
		{4501, CounterDanger},
		{6000, CounterDanger},
	}

	for _, tt := range tests {
		if got := TierFor(tt.count); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestLength(t *testing.T) {
	if n := Length("Hello World"); n != 11 {
		t.Errorf("Expected 11, got %d", n)
	}
	if n := Length("café"); n != 4 {
		t.Errorf("Expected 4 characters for café, got %d", n)
	}
}
