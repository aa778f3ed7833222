package whatsapp

// Included in the messages object when a customer has placed an order.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type Order struct {

	// ID for the catalog the ordered item belongs to.
	CatalogID string `json:"catalog_id,omitempty"`

	// Text message from the user sent along with the order.
	Text string `json:"text,omitempty"`

	// Array of product item objects ordered.
	Products []*ProductItem `json:"product_items,omitempty"`
}

type ProductItem struct {

	// Unique identifier of the product in a catalog.
	ProductRetailerID string `json:"product_retailer_id,omitempty"`

	// Number of items.
	Quantity int64 `json:"quantity,omitempty"`

	// Price of each item.
	ItemPrice float64 `json:"item_price,omitempty"`

	// Price currency.
	Currency string `json:"currency,omitempty"`
}
