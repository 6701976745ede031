package log

import (
	"context"
	"testing"
)

func TestSplitKV(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		wantOK bool
		wantKV int
	}{
		{name: "plain message", args: []any{"hello"}, wantOK: false},
		{name: "message with error value", args: []any{"failed: ", "boom"}, wantOK: false},
		{name: "structured", args: []any{"done", "provider", "lexicon", "model", "cues"}, wantOK: true, wantKV: 4},
		{name: "non string key", args: []any{"done", 1, "x"}, wantOK: false},
		{name: "non string message", args: []any{42, "k", "v"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kv, ok := splitKV(tt.args)
			if ok != tt.wantOK {
				t.Fatalf("splitKV() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && len(kv) != tt.wantKV {
				t.Errorf("splitKV() kv len = %d, want %d", len(kv), tt.wantKV)
			}
		})
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	configs := []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "nonsense"},
	}
	for _, cfg := range configs {
		l := Init(cfg)
		ctx := WithSessionID(context.Background(), "s-1")
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "structured", "key", "value")
		l.Warn(ctx, "plain")
	}

	NewNop().Error(context.Background(), "discarded")
}
