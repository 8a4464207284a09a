package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "leads.db", "-p", "local"},
			allowed: []string{"-d"},
			want:    []string{"-d", "leads.db"},
		},
		{
			name:    "equals form",
			args:    []string{"-e=https://sheets.example/hook", "-d", "x.db"},
			allowed: []string{"-e"},
			want:    []string{"-e=https://sheets.example/hook"},
		},
		{
			name:    "order preserved",
			args:    []string{"-p=local", "-d", "a.db", "-x", "1"},
			allowed: []string{"-p", "-d"},
			want:    []string{"-p=local", "-d", "a.db"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "next token is another flag",
			args:    []string{"-d", "-p", "local"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"bin", "-c", "client.json", "-d", "x.db"}, want: "client.json"},
		{name: "long equals", args: []string{"bin", "-config=client.json"}, want: "client.json"},
		{name: "absent", args: []string{"bin", "-d", "x.db"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}
