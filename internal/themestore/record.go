package themestore

import (
	"time"

	"nathanbeddoewebdev/twui/internal/theme"
)

// TenantTheme is the stored theme of one tenant.
type TenantTheme struct {
	ID        int64
	Tenant    string
	Config    theme.Config
	UpdatedAt time.Time
}
