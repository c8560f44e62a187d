// Package themes provides a service layer over user defaults and stored
// tenant themes.
package themes

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"nathanbeddoewebdev/twui/internal/auditlog"
	"nathanbeddoewebdev/twui/internal/document"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/provider"
	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/themestore"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultExportName is the file stem used for the untenanted stylesheet.
// Tenant files are written under the TenantExportDir subdirectory.
const (
	DefaultExportName = "default"
	TenantExportDir   = "tenants"
)

// exportConcurrency bounds the number of files written at once.
const exportConcurrency = 4

// Service combines the user's default theme with per-tenant overrides.
type Service struct {
	repo     themestore.Repository
	history  auditlog.Repository
	defaults theme.Config
	logger   *log.Logger
}

// NewService creates a themes service. defaults holds the user's configured
// theme; unset fields fall back to theme.Default(). A nil repo makes every
// tenant resolve to the defaults.
func NewService(repo themestore.Repository, defaults theme.Config, logger *log.Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logging.OrDiscard(logger).With("component", "themes"),
	}
}

// WithHistory records every Save and Delete in h. Close closes h too.
func (s *Service) WithHistory(h auditlog.Repository) *Service {
	s.history = h
	return s
}

// Close releases repository resources.
func (s *Service) Close() error {
	var errs []error
	if s.repo != nil {
		errs = append(errs, s.repo.Close())
	}
	if s.history != nil {
		errs = append(errs, s.history.Close())
	}
	return errors.Join(errs...)
}

// Defaults returns the user's default theme with built-in defaults applied
// and no tenant.
func (s *Service) Defaults() theme.Config {
	cfg := theme.Merge(theme.Default(), s.defaults)
	cfg.TenantID = ""
	return cfg
}

// Effective returns the theme a tenant renders with: built-in defaults,
// then the user's defaults, then the tenant's stored overrides. An empty
// tenant returns Defaults. Tenants without a stored theme inherit the
// defaults.
func (s *Service) Effective(ctx context.Context, tenant string) (theme.Config, error) {
	cfg := s.Defaults()
	if tenant == "" {
		return cfg, nil
	}
	if !theme.ValidTenantID(tenant) {
		return theme.Config{}, fmt.Errorf("themes: %w: invalid tenant id %q", theme.ErrInvalidValue, tenant)
	}

	if s.repo != nil {
		rec, err := s.repo.Get(ctx, tenant)
		switch {
		case errors.Is(err, themestore.ErrNotFound):
			s.logger.Debug("tenant has no stored theme", "tenant", tenant)
		case err != nil:
			return theme.Config{}, fmt.Errorf("themes: load tenant %q: %w", tenant, err)
		default:
			cfg = theme.Merge(cfg, rec.Config)
		}
	}
	cfg.TenantID = tenant
	return cfg, nil
}

// Get returns the overrides stored for tenant, without defaults.
func (s *Service) Get(ctx context.Context, tenant string) (theme.Config, error) {
	if s.repo == nil {
		return theme.Config{}, fmt.Errorf("themes: %w: %q", themestore.ErrNotFound, tenant)
	}
	rec, err := s.repo.Get(ctx, tenant)
	if err != nil {
		return theme.Config{}, err
	}
	return rec.Config, nil
}

// Save validates and stores the overrides for tenant.
func (s *Service) Save(ctx context.Context, tenant string, cfg theme.Config) error {
	if s.repo == nil {
		return errors.New("themes: no theme store configured")
	}
	cfg.TenantID = tenant
	if err := theme.Validate(theme.Merge(s.Defaults(), cfg)); err != nil {
		return fmt.Errorf("themes: %w", err)
	}
	before := s.stored(ctx, tenant)
	if err := s.repo.Save(ctx, &themestore.TenantTheme{Tenant: tenant, Config: cfg}); err != nil {
		s.record(ctx, auditlog.ActionSave, tenant, before, &cfg, err)
		return err
	}
	s.record(ctx, auditlog.ActionSave, tenant, before, &cfg, nil)
	s.logger.Info("saved tenant theme", "tenant", tenant)
	return nil
}

// Delete removes the stored overrides for tenant.
func (s *Service) Delete(ctx context.Context, tenant string) error {
	if s.repo == nil {
		return fmt.Errorf("themes: %w: %q", themestore.ErrNotFound, tenant)
	}
	before := s.stored(ctx, tenant)
	if err := s.repo.Delete(ctx, tenant); err != nil {
		s.record(ctx, auditlog.ActionDelete, tenant, before, nil, err)
		return err
	}
	s.record(ctx, auditlog.ActionDelete, tenant, before, nil, nil)
	s.logger.Info("deleted tenant theme", "tenant", tenant)
	return nil
}

// List returns every stored tenant theme ordered by tenant.
func (s *Service) List(ctx context.Context) ([]themestore.TenantTheme, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx)
}

// ExportOptions controls ExportAll.
type ExportOptions struct {
	// HTML additionally writes a preview page per theme.
	HTML bool
}

// ExportAll writes default.css into dir and tenants/<tenant>.css for every
// stored tenant, and returns the written paths in sorted order. Tenant ids
// are path-escaped to form file names.
func (s *Service) ExportAll(ctx context.Context, dir string, opts ExportOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("themes: create export directory %s: %w", dir, err)
	}

	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	targets := map[string]theme.Config{filepath.Join(dir, DefaultExportName): s.Defaults()}
	for _, rec := range records {
		cfg := theme.Merge(s.Defaults(), rec.Config)
		cfg.TenantID = rec.Tenant
		// Join would clean ids such as "..", so the file stem is appended as is.
		stem := filepath.Join(dir, TenantExportDir) + string(filepath.Separator) + url.PathEscape(rec.Tenant)
		targets[stem] = cfg
	}

	var (
		mu      sync.Mutex
		written []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for stem, cfg := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths, err := exportOne(stem, cfg, opts)
			if err != nil {
				return fmt.Errorf("export %s: %w", filepath.Base(stem), err)
			}
			mu.Lock()
			written = append(written, paths...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("themes: %w", err)
	}

	sort.Strings(written)
	s.logger.Info("exported themes", "dir", dir, "files", len(written))
	return written, nil
}

// exportOne writes stem.css and, when requested, stem.html.
func exportOne(stem string, cfg theme.Config, opts ExportOptions) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(stem), 0o755); err != nil {
		return nil, err
	}
	cssPath := stem + ".css"
	if err := os.WriteFile(cssPath, []byte(theme.StyleSheet(cfg)+"\n"), 0o644); err != nil {
		return nil, err
	}
	paths := []string{cssPath}

	if opts.HTML {
		doc := document.New()
		p := provider.New(doc, provider.Options{Value: &cfg})
		defer p.Close()

		htmlPath := stem + ".html"
		if err := doc.WriteFile(htmlPath); err != nil {
			return nil, err
		}
		paths = append(paths, htmlPath)
	}
	return paths, nil
}
