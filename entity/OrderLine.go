package entity

import "encoding/json"

// Wire shapes for POST /order/place. The configuration breakdown is bucketed
// into singles and multiples exactly as the backend expects it; the whole
// block is omitted when no configuration applies.

type SingleChoice struct {
	Value       string `json:"value"`
	PriceChange Price  `json:"price_change"`
}

// price_change goes out as "x.xx" text; every other money field is a number.
func (c SingleChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value       string `json:"value"`
		PriceChange string `json:"price_change"`
	}{c.Value, c.PriceChange.StringFixed(2)})
}

type MultipleChoice struct {
	Title       string `json:"title"`
	PriceChange Price  `json:"price_change"`
}

func (c MultipleChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string `json:"title"`
		PriceChange string `json:"price_change"`
	}{c.Title, c.PriceChange.StringFixed(2)})
}

type LineConfigurations struct {
	Singles   map[string]SingleChoice     `json:"singles,omitempty"`
	Multiples map[string][]MultipleChoice `json:"multiples,omitempty"`
}

func (c *LineConfigurations) Empty() bool {
	return c == nil || (len(c.Singles) == 0 && len(c.Multiples) == 0)
}

type OrderLine struct {
	ItemID             string              `json:"item_id"`
	Qty                int                 `json:"qty"`
	Price              Price               `json:"price"`
	Comments           []string            `json:"comments"`
	Configurations     *LineConfigurations `json:"item_configurations,omitempty"`
	ConfigurationTotal Price               `json:"configuration_total"`
	BasePrice          Price               `json:"base_price"`
}
