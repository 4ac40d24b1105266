package models

// DefaultShopName is used when no shop settings record exists.
const DefaultShopName = "My Shop"

// ShopSettings is the singleton shop configuration record.
// If multiple rows exist the first one found wins.
type ShopSettings struct {
	// ID is the unique identifier for the settings record (UUID format).
	ID string `json:"id"`

	// ShopName is the display name shown in reminder messages.
	ShopName string `json:"shopName"`
}
