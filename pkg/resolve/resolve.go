package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/macropower/starship-profiles/pkg/config"
	"github.com/macropower/starship-profiles/pkg/log"
)

// ErrProfilesDirMissing is returned when a profile was resolved but the
// directory holding per-profile config files does not exist.
var ErrProfilesDirMissing = errors.New("profiles directory is not a valid directory")

// Context holds the inputs of a single resolution.
type Context struct {
	// Override is a profile name forced by the caller. Empty means none.
	Override string
	// Cwd is the directory matched against profile patterns.
	Cwd string
	// Home replaces the "~" placeholder in patterns and in Cwd.
	Home string
}

// Resolve returns the selected profile name. The boolean is false when no
// profile was selected, which is not an error.
//
// A nil cfg means no configuration file exists.
func Resolve(ctx context.Context, rc Context, cfg *config.Config) (string, bool, error) {
	ctx, span := otel.Tracer("resolve").Start(ctx, "resolve", trace.WithAttributes(
		attribute.String("cwd", rc.Cwd),
		attribute.String("override", rc.Override),
	))
	defer span.End()

	logger := log.WithContext(ctx)

	if rc.Override != "" {
		// Always take the user specified profile, even if it is not configured.
		logger.DebugContext(ctx, "using profile override", slog.String("profile", rc.Override))

		return rc.Override, true, nil
	}

	if cfg == nil {
		return "", false, nil
	}

	name, ok, err := cfg.MatchingProfile(rc.Cwd, rc.Home)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "match profile")

		return "", false, fmt.Errorf("match profile: %w", err)
	}

	if ok {
		span.SetAttributes(attribute.String("profile", name))
		logger.DebugContext(ctx, "matched profile",
			slog.String("profile", name),
			slog.String("cwd", rc.Cwd),
		)
	}

	return name, ok, nil
}

// ProfilePath returns the config file for the named profile,
// "<configDir>/profiles/<name>.toml".
//
// The file itself is not checked, but the profiles directory must exist.
func ProfilePath(configDir, name string) (string, error) {
	dir := config.ProfilesDir(configDir)

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrProfilesDirMissing, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrProfilesDirMissing, dir)
	}

	return filepath.Join(dir, name+config.ProfileExt), nil
}

// ProfileConfig resolves the profile and maps it to its config file path.
// The boolean is false, with an empty path, when no profile was selected.
func ProfileConfig(ctx context.Context, rc Context, cfg *config.Config, configDir string) (string, bool, error) {
	name, ok, err := Resolve(ctx, rc, cfg)
	if err != nil || !ok {
		return "", false, err
	}

	path, err := ProfilePath(configDir, name)
	if err != nil {
		return "", false, err
	}

	log.WithContext(ctx).DebugContext(ctx, "using profile", slog.String("path", path))

	return path, true, nil
}
