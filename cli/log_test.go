package cli

import (
	"os"
	"testing"

	"github.com/ardnew/denv/log"
)

func TestLogConfigScan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"-t", "maya", "--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=trace", "compute", "--log-format=text"},
			want: logConfig{Level: "trace", Format: "text"},
		},
		{
			name: "value that looks like a flag",
			args: []string{"--log-level", "-t", "maya"},
			want: logConfig{},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--no-log-pretty"},
			want: logConfig{Caller: true, Pretty: false},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=true", "--no-log-caller=false", "--log-caller=maybe"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "launch arguments",
			args: []string{"launch", "-t", "maya", "maya", "--", "--log-level", "error", "--log-caller"},
			want: logConfig{},
		},
		{
			name: "unrelated flags",
			args: []string{"--logger", "--no-log-level", "x", "--log-time-layout", "RFC3339"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
