package themes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/twui/internal/auditlog"
	"nathanbeddoewebdev/twui/internal/theme"
)

// ErrNoHistory is returned by the history methods when the service was
// built without a history repository.
var ErrNoHistory = errors.New("themes: history is not enabled")

// History returns the most recent changes, newest first. An empty tenant
// lists changes to every tenant.
func (s *Service) History(ctx context.Context, tenant string, limit int) ([]auditlog.AuditEntry, error) {
	if s.history == nil {
		return nil, ErrNoHistory
	}
	if limit <= 0 {
		return nil, fmt.Errorf("themes: limit must be greater than 0")
	}
	if tenant == "" {
		return s.history.List(ctx, limit)
	}
	return s.history.ListByTenant(ctx, tenant, limit)
}

// PruneHistory deletes changes older than olderThan and returns how many
// were removed.
func (s *Service) PruneHistory(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.history == nil {
		return 0, ErrNoHistory
	}
	return s.history.Prune(ctx, olderThan)
}

// stored returns the overrides currently stored for tenant, or nil.
func (s *Service) stored(ctx context.Context, tenant string) *theme.Config {
	if s.history == nil {
		return nil
	}
	rec, err := s.repo.Get(ctx, tenant)
	if err != nil {
		return nil
	}
	return &rec.Config
}

// record appends a history entry. Failures are logged and never fail the
// change itself.
func (s *Service) record(ctx context.Context, action, tenant string, before, after *theme.Config, opErr error) {
	if s.history == nil {
		return
	}

	entry := &auditlog.AuditEntry{
		Command: auditlog.MetadataFromContext(ctx).Command,
		Action:  action,
		Tenant:  tenant,
		Before:  encodeConfig(before),
		After:   encodeConfig(after),
		Outcome: auditlog.OutcomeSuccess,
		Detail:  DescribeChange(before, after),
	}
	if opErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.After = ""
		entry.Detail = opErr.Error()
	}

	if err := s.history.Save(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Warn("failed to record theme change", "tenant", tenant, "error", err)
	}
}

func encodeConfig(cfg *theme.Config) string {
	if cfg == nil {
		return ""
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return string(data)
}

// DescribeChange summarises the fields that differ between two stored
// override sets, e.g. "theme: light -> dark, radius: unset -> large".
func DescribeChange(before, after *theme.Config) string {
	var b, a theme.Config
	if before != nil {
		b = *before
	}
	if after != nil {
		a = *after
	}

	bf, af := fieldsOf(b), fieldsOf(a)
	var parts []string
	for i := range bf {
		if bf[i].value != af[i].value {
			parts = append(parts, fmt.Sprintf("%s: %s -> %s", bf[i].name, orUnset(bf[i].value), orUnset(af[i].value)))
		}
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}

type field struct {
	name  string
	value string
}

func fieldsOf(cfg theme.Config) []field {
	background := ""
	if cfg.HasBackground != nil {
		background = strconv.FormatBool(*cfg.HasBackground)
	}
	return []field{
		{"theme", string(cfg.Theme)},
		{"accentColor", string(cfg.AccentColor)},
		{"grayColor", string(cfg.GrayColor)},
		{"radius", string(cfg.Radius)},
		{"scaling", string(cfg.Scaling)},
		{"panelBackground", string(cfg.PanelBackground)},
		{"hasBackground", background},
	}
}

func orUnset(v string) string {
	if v == "" {
		return "unset"
	}
	return v
}
