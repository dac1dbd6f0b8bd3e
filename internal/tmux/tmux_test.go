package tmux

import (
	"context"
	"testing"

	"github.com/pact-cli/pact/internal/runner"
	"github.com/pact-cli/pact/internal/runner/runnertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"pact", "pact"},
		{"my.project", "my_project"},
		{"a:b.c", "a_b_c"},
		{"with-dash_underscore", "with-dash_underscore"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SessionName(tt.in))
	}
}

func TestNew_DetectsTmuxEnv(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	assert.True(t, New(runnertest.New()).InsideTmux)

	t.Setenv("TMUX", "")
	assert.False(t, New(runnertest.New()).InsideTmux)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*runnertest.Fake)
		inside      bool
		keys        string
		wantCreated bool
		want        []string
	}{
		{
			name: "no server starts attached session",
			setup: func(f *runnertest.Fake) {
				f.Fail("tmux info")
			},
			wantCreated: true,
			want: []string{
				"tmux info",
				"tmux new-session -s proj -c /p",
			},
		},
		{
			name: "server running inside tmux switches",
			setup: func(f *runnertest.Fake) {
				f.Fail("tmux has-session")
			},
			inside:      true,
			wantCreated: true,
			want: []string{
				"tmux info",
				"tmux has-session -t =proj",
				"tmux new-session -d -s proj -c /p",
				"tmux switch-client -t =proj",
			},
		},
		{
			name: "server running outside tmux attaches",
			setup: func(f *runnertest.Fake) {
				f.Fail("tmux has-session")
			},
			wantCreated: true,
			want: []string{
				"tmux info",
				"tmux has-session -t =proj",
				"tmux new-session -d -s proj -c /p",
				"tmux attach-session -t =proj",
			},
		},
		{
			name:   "existing session is reused",
			setup:  func(f *runnertest.Fake) {},
			inside: true,
			want: []string{
				"tmux info",
				"tmux has-session -t =proj",
				"tmux switch-client -t =proj",
			},
		},
		{
			name: "keys are sent before attaching",
			setup: func(f *runnertest.Fake) {
				f.Fail("tmux info")
			},
			keys:        "source venv/bin/activate",
			wantCreated: true,
			want: []string{
				"tmux info",
				"tmux new-session -d -s proj -c /p",
				"tmux send-keys -t proj 'source venv/bin/activate' Enter",
				"tmux attach-session -t =proj",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := runnertest.New()
			tt.setup(fake)
			mux := &Tmux{Runner: fake, InsideTmux: tt.inside}

			created, err := mux.Open(context.Background(), "proj", "/p", tt.keys)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, tt.want, fake.Commands())
		})
	}
}

func TestOpen_AttachIsInteractive(t *testing.T) {
	fake := runnertest.New().Fail("tmux info")
	mux := &Tmux{Runner: fake}

	_, err := mux.Open(context.Background(), "proj", "/p", "")
	require.NoError(t, err)

	c, ok := fake.Find("tmux new-session")
	require.True(t, ok)
	assert.True(t, c.Interactive)
}

func TestOpen_Failures(t *testing.T) {
	t.Run("detached session fails", func(t *testing.T) {
		fake := runnertest.New().Fail("tmux has-session").Fail("tmux new-session")
		_, err := (&Tmux{Runner: fake, InsideTmux: true}).Open(context.Background(), "proj", "/p", "")
		assert.ErrorIs(t, err, runner.ErrCommandFailed)
		assert.False(t, fake.Ran("tmux switch-client"))
	})

	t.Run("switch fails", func(t *testing.T) {
		fake := runnertest.New().Fail("tmux has-session").Fail("tmux switch-client")
		_, err := (&Tmux{Runner: fake, InsideTmux: true}).Open(context.Background(), "proj", "/p", "")
		assert.ErrorIs(t, err, runner.ErrCommandFailed)
	})

	t.Run("attached session fails", func(t *testing.T) {
		fake := runnertest.New().Fail("tmux info").Fail("tmux new-session")
		_, err := (&Tmux{Runner: fake}).Open(context.Background(), "proj", "/p", "")
		assert.ErrorIs(t, err, runner.ErrCommandFailed)
	})
}

func TestVersion(t *testing.T) {
	fake := runnertest.New().On("tmux -V", runnertest.Response{Stdout: "tmux 3.3a\n"})
	v, err := (&Tmux{Runner: fake}).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tmux 3.3a", v)
	assert.True(t, fake.Calls[0].ReadOnly)
}
