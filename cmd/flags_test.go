package cmd

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/slidekit/git-slides/internal/output"
)

// argContext builds a cli.Context carrying the given positional args.
func argContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	// "--" keeps a leading "-2" from being parsed as a flag.
	require.NoError(t, set.Parse(append([]string{"--"}, args...)))
	return cli.NewContext(App(), set, nil)
}

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  output.Format
	}{
		{"json", "json", output.FormatJSON},
		{"console", "console", output.FormatConsole},
		{"empty defaults to console", "", output.FormatConsole},
		{"unknown defaults to console", "xml", output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getOutputFormat(tt.input))
		})
	}
}

func TestStepCount(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"no argument defaults to one", nil, 1, false},
		{"explicit count", []string{"3"}, 3, false},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-2"}, 0, true},
		{"not a number", []string{"three"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stepCount(argContext(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBackend_UnknownEngine(t *testing.T) {
	_, err := newBackend("svn", ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine")
}

func TestApp_Commands(t *testing.T) {
	app := App()

	assert.Equal(t, "git-slides", app.Name)

	want := []string{"start", "next", "prev", "goto", "status", "list", "stop"}
	require.Len(t, app.Commands, len(want))
	for i, name := range want {
		assert.Equal(t, name, app.Commands[i].Name)
	}

	// Every command responds to --help without touching a repository.
	for _, name := range want {
		assert.NotNil(t, app.Command(name), "command %s not registered", name)
	}
}

func TestApp_CommandAliases(t *testing.T) {
	app := App()

	aliases := map[string][]string{
		"next":   {"n"},
		"prev":   {"previous", "p"},
		"goto":   {"go", "g"},
		"status": {"st"},
		"list":   {"ls"},
	}
	for name, want := range aliases {
		cmd := app.Command(name)
		require.NotNil(t, cmd, "command %s not registered", name)
		assert.Equal(t, want, cmd.Aliases, "aliases of %s", name)
	}
}
