package themes

import (
	"nathanbeddoewebdev/twui/internal/auditlog"
	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/database"
	"nathanbeddoewebdev/twui/internal/themestore"

	"github.com/charmbracelet/log"
)

// Open builds a service from the user config: its theme settings become the
// defaults and its database path (or the default path) backs the store and
// the change history.
func Open(cfg *config.Config, logger *log.Logger) (*Service, error) {
	path, err := database.Resolve(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	repo, err := themestore.OpenAt(path)
	if err != nil {
		return nil, err
	}
	history, err := auditlog.OpenAt(path)
	if err != nil {
		repo.Close()
		return nil, err
	}
	defaults := cfg.ThemeConfig()
	defaults.TenantID = ""
	return NewService(repo, defaults, logger).WithHistory(history), nil
}
