package domain

// Product represents a catalog product. The json tags are the wire contract
// consumed by the storefront pages; the bson tags are the persisted layout in
// the document store. Products are read-only once created; there are no
// update or delete paths in this system.
type Product struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Slug        string   `json:"slug" bson:"slug"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Currency    string   `json:"currency" bson:"currency"`
	Category    string   `json:"category" bson:"category"`
	Tags        []string `json:"tags" bson:"tags"`
	Image       string   `json:"image" bson:"image"`
	Gallery     []string `json:"gallery" bson:"gallery"`
	Rating      float64  `json:"rating" bson:"rating"`
	RatingCount int      `json:"ratingCount" bson:"ratingCount"`
	Inventory   int      `json:"inventory" bson:"inventory"`
	Featured    bool     `json:"featured" bson:"featured"`
	Brand       string   `json:"brand" bson:"brand"`
	Colors      []string `json:"colors" bson:"colors"`
}

// CartItem is a product plus the quantity held in a client session. It is
// never persisted server-side.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
