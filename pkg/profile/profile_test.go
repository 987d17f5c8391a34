package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/starship-profiles/pkg/pattern"
	"github.com/macropower/starship-profiles/pkg/profile"
)

const home = "/home/alice"

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  string
		patterns []string
		wantErr  bool
	}{
		{
			name:     "valid profile",
			profile:  "work",
			patterns: []string{"~/work/.*"},
			wantErr:  false,
		},
		{
			name:    "profile without patterns",
			profile: "plain",
			wantErr: false,
		},
		{
			name:     "empty name",
			profile:  "",
			patterns: []string{"/tmp"},
			wantErr:  true,
		},
		{
			name:    "blank name",
			profile: "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := profile.New(tt.profile, tt.patterns...)

			if tt.wantErr {
				require.ErrorIs(t, err, profile.ErrEmptyName)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, tt.profile, p.Name)
				assert.Equal(t, tt.patterns, p.Patterns)
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("valid profile", func(t *testing.T) {
		t.Parallel()

		p := profile.MustNew("dev", "~/code/.*")
		require.NotNil(t, p)
		assert.Equal(t, "dev", p.Name)
	})

	t.Run("invalid profile panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			profile.MustNew("")
		})
	})
}

func TestProfile_Matches(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		patterns []string
		dir      string
		want     bool
		wantErr  bool
	}{
		"no patterns never matches": {
			patterns: nil,
			dir:      "/home/alice/code",
			want:     false,
		},
		"single matching pattern": {
			patterns: []string{"~/code/.*"},
			dir:      "/home/alice/code/proj",
			want:     true,
		},
		"second pattern matches": {
			patterns: []string{"/srv", "~/code"},
			dir:      "/home/alice/code",
			want:     true,
		},
		"no pattern matches": {
			patterns: []string{"/srv", "/opt"},
			dir:      "/home/alice/code",
			want:     false,
		},
		"invalid pattern is an error": {
			patterns: []string{"/srv/("},
			dir:      "/srv/x",
			wantErr:  true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := profile.MustNew("test", tc.patterns...)

			got, err := p.Matches(tc.dir, home)
			if tc.wantErr {
				require.ErrorIs(t, err, pattern.ErrInvalidPattern)
				assert.Contains(t, err.Error(), `profile "test"`)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfile_CompileWithCache(t *testing.T) {
	t.Parallel()

	c := pattern.NewCache()

	a := profile.MustNew("a", "~/code", "/tmp")
	b := profile.MustNew("b", "/home/alice/code")

	require.NoError(t, a.Compile(home, c))
	require.NoError(t, b.Compile(home, c))
	assert.Equal(t, 2, c.Len())

	got, err := b.Matches("~/code/x", home)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestProfile_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", profile.MustNew("plain").String())
	assert.Equal(t, "dev: ~/code, /tmp", profile.MustNew("dev", "~/code", "/tmp").String())
}
