package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveCategory(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"Milk_Product_1_Cheese", "Milk"},
		{"Milk_Product_2_Butter", "Milk"},
		{"Veg_Product_1_Tomato", "Veg"},
		{"Bakery_Product_1_Bread", "Bakery_Product"},
		{"Packing_Product_1_Box", "Packing_Product"},
		{"Bakery_Item_1_Bun", "Bakery"}, // reserved token without the marker word
		{"Butter", "General"},
		{"", "General"},
		{"_Product_1", "General"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DeriveCategory(tc.code), "code %q", tc.code)
	}
}

func TestWeightApplicable(t *testing.T) {
	require.True(t, WeightApplicable("Milk"))
	require.True(t, WeightApplicable("General"))
	require.False(t, WeightApplicable("Bakery_Product"))
	require.False(t, WeightApplicable("Packing_Product"))
	require.False(t, WeightApplicable("Bakery"))
}
