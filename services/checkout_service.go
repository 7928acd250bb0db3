package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService translates the cart back into the wire format of
// POST /order/place and submits it. Per line it resolves the original menu
// item to recover base price and group type metadata, then re-derives the
// configuration breakdown bucketed into singles and multiples.
type CheckoutService struct {
	api  *api.Client
	cart *CartService
	menu *MenuService
	log  zerolog.Logger
}

func NewCheckoutService(client *api.Client, cart *CartService, menu *MenuService, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{api: client, cart: cart, menu: menu, log: log}
}

// BuildLines renders the current cart as order lines. Entries whose item is
// no longer on the menu still go out, with zero base price and no breakdown;
// the backend is the authority on rejecting them.
func (s *CheckoutService) BuildLines() []entity.OrderLine {
	entries := s.cart.Entries()
	lines := make([]entity.OrderLine, 0, len(entries))

	for _, e := range entries {
		var base entity.Price
		var cfg *entity.LineConfigurations
		var delta entity.Price

		if item, ok := s.menu.Item(e.Key.ItemUUID); ok {
			base = item.Price
			cfg, delta = translateSelection(item, e.Selection)
		}

		comments := []string{}
		if e.Note != "" {
			comments = []string{e.Note}
		}

		lines = append(lines, entity.OrderLine{
			ItemID:             e.Key.ItemUUID,
			Qty:                e.Quantity,
			Price:              e.UnitPrice,
			Comments:           comments,
			Configurations:     cfg,
			ConfigurationTotal: delta,
			BasePrice:          base,
		})
	}
	return lines
}

// Submit places the cart as a staff order for the table. An empty cart is
// rejected before any network traffic. A backend failure leaves the cart
// untouched; success clears it.
func (s *CheckoutService) Submit(ctx context.Context, tableCode, note string) error {
	if s.cart.Empty() {
		return ErrEmptyCart
	}
	lines := s.BuildLines()
	if err := s.api.PlaceOrder(ctx, tableCode, lines, note); err != nil {
		s.log.Warn().Err(err).Str("table", tableCode).Msg("order submission failed, cart kept")
		return err
	}
	s.cart.Clear()
	s.log.Info().Str("table", tableCode).Int("lines", len(lines)).Msg("order placed")
	return nil
}

// translateSelection rebuilds the per-group {value, price_change} breakdown
// from the item's current option metadata. Returns nil when nothing is
// selected so the block is omitted from the wire payload entirely.
func translateSelection(item entity.MenuItem, sel entity.Selection) (*entity.LineConfigurations, entity.Price) {
	var delta entity.Price
	singles := map[string]entity.SingleChoice{}
	multiples := map[string][]entity.MultipleChoice{}

	for _, cfg := range item.Configurations {
		chosen, ok := sel[cfg.Title]
		if !ok || len(chosen) == 0 {
			continue
		}
		switch cfg.Type {
		case entity.ConfigurationSingle:
			title := chosen[0]
			change := optionPrice(cfg, title)
			singles[cfg.Title] = entity.SingleChoice{Value: title, PriceChange: change}
			delta = delta.Add(change)
		case entity.ConfigurationMultiple:
			for _, title := range chosen {
				change := optionPrice(cfg, title)
				multiples[cfg.Title] = append(multiples[cfg.Title], entity.MultipleChoice{
					Title:       title,
					PriceChange: change,
				})
				delta = delta.Add(change)
			}
		}
	}

	out := &entity.LineConfigurations{}
	if len(singles) > 0 {
		out.Singles = singles
	}
	if len(multiples) > 0 {
		out.Multiples = multiples
	}
	if out.Empty() {
		return nil, delta
	}
	return out, delta
}

func optionPrice(cfg entity.ItemConfiguration, title string) entity.Price {
	for _, opt := range cfg.Options {
		if opt.Title == title {
			return opt.PriceChange
		}
	}
	return entity.Price{}
}
