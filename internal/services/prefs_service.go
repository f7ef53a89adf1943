package services

import (
	"tradepost/internal/domain"
	"tradepost/internal/store"
)

// PrefsService persists per-session display preferences (currently the
// theme) in durable local storage.
type PrefsService struct {
	KV *store.KV
}

func NewPrefsService(kv *store.KV) *PrefsService { return &PrefsService{KV: kv} }

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func themeKey(sid string) string { return "theme:" + sid }

func (s *PrefsService) Theme(sid string) string {
	t := s.KV.Get(themeKey(sid), ThemeLight)
	if t != ThemeLight && t != ThemeDark {
		return ThemeLight
	}
	return t
}

func (s *PrefsService) SetTheme(sid, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return domain.ValidationError("theme must be %q or %q", ThemeLight, ThemeDark)
	}
	return s.KV.Put(themeKey(sid), theme)
}
