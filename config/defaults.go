package config

import (
	"github.com/spf13/viper"
)

// defaultMaxItemsPerOrder caps the item count accepted on a single order.
const defaultMaxItemsPerOrder = 100

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.path", "") // Empty means use platform default

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.timezone", "local")

	// Orders defaults
	v.SetDefault("orders.max_items_per_order", defaultMaxItemsPerOrder)
}
