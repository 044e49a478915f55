package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"todolist/internal/app"
	"todolist/internal/repository/sqlite"
	"todolist/internal/theme"
)

// session is an open database plus the list loaded from it
type session struct {
	db     *sqlite.DB
	shell  *app.Shell
	theme  *theme.Theme
	styles *theme.Styles
}

func openSession(ctx context.Context) (*session, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: appConfig.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	shell, err := app.NewShell(app.Config{
		Repo:       sqlite.NewSnapshotRepository(db),
		StorageKey: appConfig.StorageKey,
		Logger:     logger.Named("app"),
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := shell.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}

	themeObj, styles := loadStyles()
	return &session{db: db, shell: shell, theme: themeObj, styles: styles}, nil
}

func (s *session) save(ctx context.Context) error {
	return s.shell.Save(ctx)
}

func (s *session) Close() error {
	return s.db.Close()
}

// resolves the configured theme, falling back to the default one
func loadStyles() (*theme.Theme, *theme.Styles) {
	themeObj, err := theme.Resolve(appConfig.ThemeName)
	if err != nil {
		logger.Warn("unknown theme, using default", zap.String("theme", appConfig.ThemeName))
	}
	return themeObj, theme.NewStyles(themeObj)
}

func printSuccess(w io.Writer, styles *theme.Styles, format string, a ...any) {
	fmt.Fprintln(w, styles.Success.Render("✓ "+fmt.Sprintf(format, a...)))
}

func printFailure(w io.Writer, styles *theme.Styles, format string, a ...any) {
	fmt.Fprintln(w, styles.Error.Render("✗ "+fmt.Sprintf(format, a...)))
}
