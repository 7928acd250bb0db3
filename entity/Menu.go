package entity

const (
	ConfigurationSingle   = "single"
	ConfigurationMultiple = "multiple"
)

type ConfigurationOption struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	PriceChange       Price  `json:"price_change"`
	Preselected       bool   `json:"preselected"`
	FixedPreselection bool   `json:"fixed_preselection"`
}

type ItemConfiguration struct {
	ID                int                   `json:"id"`
	Title             string                `json:"title"`
	Type              string                `json:"type"` // single | multiple
	FixedPreselection bool                  `json:"fixed_preselection"`
	Options           []ConfigurationOption `json:"configuration_options"`
}

type MenuItem struct {
	ID             int                 `json:"id"`
	UUID           string              `json:"uuid"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Price          Price               `json:"price"`
	Image          *string             `json:"image"`
	IsEnabled      bool                `json:"is_enabled"`
	IsDisabled     bool                `json:"is_disabled"`
	SoldOut        bool                `json:"sold_out"`
	Configurations []ItemConfiguration `json:"item_configurations,omitempty"`
}

// Available reports whether the item may appear on the order screen at all.
// Sold-out items still show there, just not in search results.
func (m MenuItem) Available() bool { return m.IsEnabled && !m.IsDisabled }

type MenuCategory struct {
	ID            int            `json:"id"`
	UUID          string         `json:"uuid"`
	Title         string         `json:"title"`
	Description   *string        `json:"description"`
	Order         int            `json:"order"`
	IsEnabled     bool           `json:"is_enabled"`
	Items         []MenuItem     `json:"items"`
	Subcategories []MenuCategory `json:"subcategories,omitempty"`
}
