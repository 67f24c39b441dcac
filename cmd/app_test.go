package cmd

import (
	"testing"

	"github.com/naka-gawa/github-resume/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a command with the same flags as the resume command.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd.Flags())
	addResumeFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyFlags(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{User: "env-user", Token: "env-token", Concurrency: 4, OutputDir: "."}
	}

	tests := []struct {
		name    string
		args    []string
		want    *config.Config
		wantErr bool
	}{
		{
			name: "no flags keep the environment values",
			args: nil,
			want: base(),
		},
		{
			name: "flags override the environment",
			args: []string{"--user", "octocat", "--token", "t", "--concurrency", "8", "--api-url", "http://localhost/", "--out", "charts"},
			want: &config.Config{User: "octocat", Token: "t", Concurrency: 8, OutputDir: "charts", APIBaseURL: "http://localhost/"},
		},
		{
			name:    "invalid concurrency",
			args:    []string{"--concurrency", "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			err := applyFlags(newTestCommand(t, tt.args...), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUME_CONCURRENCY", "0")

	_, err := loadConfig(newTestCommand(t))
	assert.Error(t, err, "invalid environment without an override")

	cfg, err := loadConfig(newTestCommand(t, "--concurrency", "2"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, newLogger(newTestCommand(t)).GetLevel())
	assert.Equal(t, logrus.DebugLevel, newLogger(newTestCommand(t, "-v")).GetLevel())
}
