package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
)

// MenuService holds the processed menu tree: enabled categories flattened in
// display order, with an item index for uuid lookups during checkout.
type MenuService struct {
	api *api.Client
	log zerolog.Logger

	mu         sync.RWMutex
	categories []entity.MenuCategory
	index      map[string]entity.MenuItem
}

func NewMenuService(client *api.Client, log zerolog.Logger) *MenuService {
	return &MenuService{api: client, log: log, index: map[string]entity.MenuItem{}}
}

func (s *MenuService) Load(ctx context.Context) error {
	raw, err := s.api.Menu(ctx)
	if err != nil {
		return err
	}
	processed := ProcessCategories(raw)

	index := make(map[string]entity.MenuItem)
	for _, cat := range processed {
		for _, item := range cat.Items {
			index[item.UUID] = item
		}
	}

	s.mu.Lock()
	s.categories = processed
	s.index = index
	s.mu.Unlock()
	s.log.Debug().Int("categories", len(processed)).Int("items", len(index)).Msg("menu loaded")
	return nil
}

func (s *MenuService) Categories() []entity.MenuCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.MenuCategory(nil), s.categories...)
}

func (s *MenuService) Item(uuid string) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.index[uuid]
	return item, ok
}

// Search matches title or description, case-insensitive. Queries under two
// characters return nothing, and sold-out items are excluded.
func (s *MenuService) Search(query string) []entity.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []entity.MenuItem
	for _, cat := range s.categories {
		for _, item := range cat.Items {
			if item.SoldOut {
				continue
			}
			if strings.Contains(strings.ToLower(item.Title), query) ||
				strings.Contains(strings.ToLower(item.Description), query) {
				hits = append(hits, item)
			}
		}
	}
	return hits
}

// ProcessCategories flattens the nested tree into a display list: enabled
// categories sorted by their order field, each keeping only enabled and
// non-disabled items, subcategories recursed in sorted order. Categories
// left with no items disappear.
func ProcessCategories(categories []entity.MenuCategory) []entity.MenuCategory {
	var processed []entity.MenuCategory

	var walk func(cat entity.MenuCategory)
	walk = func(cat entity.MenuCategory) {
		var enabled []entity.MenuItem
		for _, item := range cat.Items {
			if item.Available() {
				enabled = append(enabled, item)
			}
		}
		if len(enabled) > 0 {
			flat := cat
			flat.Items = enabled
			flat.Subcategories = nil
			processed = append(processed, flat)
		}

		subs := append([]entity.MenuCategory(nil), cat.Subcategories...)
		sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })
		for _, sub := range subs {
			if sub.IsEnabled {
				walk(sub)
			}
		}
	}

	main := append([]entity.MenuCategory(nil), categories...)
	sort.SliceStable(main, func(i, j int) bool { return main[i].Order < main[j].Order })
	for _, cat := range main {
		if cat.IsEnabled {
			walk(cat)
		}
	}
	return processed
}

// DefaultSelection computes the initial selection for an item: single-choice
// groups take the first preselected option, or the first option outright
// when the group is a fixed preselection, or stay unselected; multiple-choice
// groups take every preselected option and are always present in the map,
// possibly empty.
func DefaultSelection(item entity.MenuItem) entity.Selection {
	sel := entity.Selection{}
	for _, cfg := range item.Configurations {
		switch cfg.Type {
		case entity.ConfigurationSingle:
			picked := ""
			for _, opt := range cfg.Options {
				if opt.Preselected {
					picked = opt.Title
					break
				}
			}
			if picked == "" && cfg.FixedPreselection && len(cfg.Options) > 0 {
				picked = cfg.Options[0].Title
			}
			if picked != "" {
				sel[cfg.Title] = []string{picked}
			}
		case entity.ConfigurationMultiple:
			picked := []string{}
			for _, opt := range cfg.Options {
				if opt.Preselected {
					picked = append(picked, opt.Title)
				}
			}
			sel[cfg.Title] = picked
		}
	}
	return sel
}

// SelectionDelta recomputes the aggregate option price delta from scratch.
// Never accumulated incrementally, so selection churn cannot drift the
// price. Titles that no longer exist on the item contribute nothing.
func SelectionDelta(item entity.MenuItem, sel entity.Selection) entity.Price {
	var delta entity.Price
	for _, cfg := range item.Configurations {
		chosen, ok := sel[cfg.Title]
		if !ok {
			continue
		}
		for _, title := range chosen {
			for _, opt := range cfg.Options {
				if opt.Title == title {
					delta = delta.Add(opt.PriceChange)
					break
				}
			}
		}
	}
	return delta
}

// Toggleable reports whether the user may flip the option. Fixed
// preselections, on the option or its whole group, render non-interactive.
func Toggleable(cfg entity.ItemConfiguration, opt entity.ConfigurationOption) bool {
	return !cfg.FixedPreselection && !opt.FixedPreselection
}

// ToggleOption applies a user tap to the selection: single groups switch to
// the option, multiple groups toggle its membership. Fixed options are left
// untouched. The input selection is not mutated.
func ToggleOption(item entity.MenuItem, sel entity.Selection, groupTitle, optionTitle string) entity.Selection {
	out := sel.Clone()
	if out == nil {
		out = entity.Selection{}
	}
	for _, cfg := range item.Configurations {
		if cfg.Title != groupTitle {
			continue
		}
		for _, opt := range cfg.Options {
			if opt.Title != optionTitle {
				continue
			}
			if !Toggleable(cfg, opt) {
				return out
			}
			if cfg.Type == entity.ConfigurationSingle {
				out[groupTitle] = []string{optionTitle}
				return out
			}
			current := out[groupTitle]
			for i, t := range current {
				if t == optionTitle {
					out[groupTitle] = append(append([]string(nil), current[:i]...), current[i+1:]...)
					return out
				}
			}
			out[groupTitle] = append(append([]string(nil), current...), optionTitle)
			return out
		}
	}
	return out
}
