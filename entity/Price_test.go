package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalTolerates(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"number", `8.5`, "8.50"},
		{"string", `"8.50"`, "8.50"},
		{"integer string", `"2"`, "2.00"},
		{"null", `null`, "0.00"},
		{"garbage string", `"abc"`, "0.00"},
		{"negative", `"-1.50"`, "-1.50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			require.Equal(t, tc.want, p.StringFixed(2))
		})
	}
}

func TestPriceMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(PriceFromString("8.5"))
	require.NoError(t, err)
	require.Equal(t, `8.50`, string(raw))
}

func TestOrderLineWireShape(t *testing.T) {
	line := OrderLine{
		ItemID: "item-margherita",
		Qty:    2,
		Price:  PriceFromString("10.00"),
		Configurations: &LineConfigurations{
			Singles: map[string]SingleChoice{
				"Größe": {Value: "Groß", PriceChange: PriceFromString("1.50")},
			},
			Multiples: map[string][]MultipleChoice{
				"Extras": {{Title: "Extra Käse", PriceChange: PriceFromString("1.00")}},
			},
		},
		ConfigurationTotal: PriceFromString("2.50"),
		BasePrice:          PriceFromString("8.50"),
	}
	raw, err := json.Marshal(line)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// money goes as numbers, price_change as text
	require.IsType(t, float64(0), decoded["price"])
	require.IsType(t, float64(0), decoded["base_price"])
	require.IsType(t, float64(0), decoded["configuration_total"])

	cfg := decoded["item_configurations"].(map[string]any)
	single := cfg["singles"].(map[string]any)["Größe"].(map[string]any)
	require.Equal(t, "1.50", single["price_change"])
	multi := cfg["multiples"].(map[string]any)["Extras"].([]any)[0].(map[string]any)
	require.Equal(t, "1.00", multi["price_change"])

	// the string form round-trips through the tolerant decoder
	var back OrderLine
	require.NoError(t, json.Unmarshal(raw, &back))
	require.True(t, back.Configurations.Singles["Größe"].PriceChange.Equal(PriceFromString("1.50")))
}

func TestPriceArithmetic(t *testing.T) {
	p := PriceFromString("8.50").Add(PriceFromString("1.50"))
	require.True(t, p.Equal(PriceFromString("10.00")))

	require.True(t, PriceFromString("2.50").MulInt(3).Equal(PriceFromString("7.50")))
	require.True(t, Price{}.IsZero())
}

func TestPriceInStructRoundTrip(t *testing.T) {
	var item OrderItem
	payload := `{"id":1,"uuid":"abc","price":"8.50","quantity":"2.00","subtotal":17.0}`
	require.NoError(t, json.Unmarshal([]byte(payload), &item))
	require.True(t, item.Price.MulInt(2).Equal(item.Subtotal))
}
