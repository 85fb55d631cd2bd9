package legacy

import "encoding/json"

// Data-transfer records for the legacy backend. Every type here mirrors
// a JSON shape exchanged with https://www.page3life.com/api and lives
// only for the duration of one call: decoded from a response or
// serialized into a request body, never cached or mutated by this
// layer.

// Product is the list/summary shape. The legacy backend uses string
// ids and decimal prices, unlike the WooCommerce family.
type Product struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Brand           string   `json:"brand"`
	Color           string   `json:"color"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice"`
	Sizes           []string `json:"sizes"`
	Images          []string `json:"images"`
	CategoryID      string   `json:"category"`
	SubCategoryID   string   `json:"subCategory"`
	Stock           int      `json:"stock"`
	Version         *int     `json:"__v"`
}

// ProductDetailed is the fully-populated read shape returned by the
// product detail endpoint.
type ProductDetailed struct {
	ID              string       `json:"_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Brand           string       `json:"brand"`
	Color           string       `json:"color"`
	Price           float64      `json:"price"`
	DiscountedPrice float64      `json:"discountedPrice"`
	Sizes           []string     `json:"sizes"`
	Images          []string     `json:"images"`
	Category        *Category    `json:"category"`
	SubCategory     *SubCategory `json:"subCategory"`
	Stock           int          `json:"stock"`
	Ratings         []Rating     `json:"ratings"`
	Reviews         []Review     `json:"reviews"`
	Version         *int         `json:"__v"`
}

// Category is a top-level product category.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SubCategory references its parent categories as a flat id list
// (many-to-many in practice).
type SubCategory struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	CategoryIDs []string `json:"categories"`
}

// CartItem is one line in a cart. Quantity defaults to 1 when the
// backend omits it.
type CartItem struct {
	Product         Product `json:"product"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

func (ci *CartItem) UnmarshalJSON(data []byte) error {
	type alias CartItem
	tmp := alias{Quantity: 1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*ci = CartItem(tmp)
	return nil
}

// CartItemWithAttributes models a WooCommerce-style variant selection
// (size, color, ...) as a key-value mapping.
type CartItemWithAttributes struct {
	ProductID  int               `json:"productId"`
	Attributes map[string]string `json:"attributes"`
	Quantity   int               `json:"quantity"`
}

func (ci *CartItemWithAttributes) UnmarshalJSON(data []byte) error {
	type alias CartItemWithAttributes
	tmp := alias{Quantity: 1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*ci = CartItemWithAttributes(tmp)
	return nil
}

// Cart aggregates line items with computed totals.
type Cart struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"user"`
	Items           []CartItem `json:"cartItems"`
	TotalPrice      float64    `json:"totalPrice"`
	DiscountedPrice float64    `json:"totalDiscountedPrice"`
	Discount        float64    `json:"discount"`
	TotalItems      int        `json:"totalItems"`
}

// AddToCartRequest is the body of PUT /api/cart/add.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest changes the quantity of one cart line.
type UpdateCartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// AddToCartResponse acknowledges a cart mutation.
type AddToCartResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// StatusResponse is the generic mutation acknowledgement used by
// several endpoints.
type StatusResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// PaymentDetails is the payment sub-record of an order.
type PaymentDetails struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	PaymentID     string `json:"paymentId"`
	PaymentStatus string `json:"paymentStatus"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	Product         Product `json:"product"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

func (oi *OrderItem) UnmarshalJSON(data []byte) error {
	type alias OrderItem
	tmp := alias{Quantity: 1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*oi = OrderItem(tmp)
	return nil
}

// Order is the lighter write/list shape.
type Order struct {
	ID              string         `json:"_id"`
	UserID          string         `json:"user"`
	ItemIDs         []string       `json:"orderItems"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`
	TotalPrice      float64        `json:"totalPrice"`
	DiscountedPrice float64        `json:"totalDiscountedPrice"`
	Discount        float64        `json:"discount"`
	TotalItems      int            `json:"totalItems"`
	Status          string         `json:"orderStatus"`
	CreatedAt       string         `json:"createdAt"`
}

// OrderDetailed is the fully-populated read shape.
type OrderDetailed struct {
	ID              string         `json:"_id"`
	UserID          string         `json:"user"`
	Items           []OrderItem    `json:"orderItems"`
	ShippingAddress *AddressDetail `json:"shippingAddress"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`
	TotalPrice      float64        `json:"totalPrice"`
	DiscountedPrice float64        `json:"totalDiscountedPrice"`
	Discount        float64        `json:"discount"`
	TotalItems      int            `json:"totalItems"`
	Status          string         `json:"orderStatus"`
	CreatedAt       string         `json:"createdAt"`
	DeliveredAt     string         `json:"deliveredAt"`
}

// OrderStatusValue returns the closed-enum form of Status.
func (o *OrderDetailed) OrderStatusValue() OrderStatus {
	return ParseOrderStatus(o.Status)
}

// CreateOrderRequest creates an order from the current cart against a
// shipping address.
type CreateOrderRequest struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateOrderResponse carries the created order id.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// PaymentLinkResponse carries the hosted payment page for an order.
type PaymentLinkResponse struct {
	PaymentLink string `json:"paymentLink"`
	PaymentID   string `json:"paymentId"`
	Status      bool   `json:"status"`
}

// AddressDetail is the read shape of a postal address. Mobile is
// validated upstream as exactly 10 digits; this layer passes it
// through untouched.
type AddressDetail struct {
	ID        string `json:"_id"`
	UserID    string `json:"user"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"streetAddress"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Mobile    string `json:"mobile"`
	IsDefault bool   `json:"isDefault"`
}

// AddressRequest is the write shape. At most one address per user may
// be default; the backend enforces that, this layer only requests the
// flag change.
type AddressRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"streetAddress"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Mobile    string `json:"mobile"`
	IsDefault bool   `json:"isDefault"`
}

// WishlistItem is a product reference with its add timestamp.
// Product-per-wishlist uniqueness is a server-side invariant.
type WishlistItem struct {
	Product Product `json:"product"`
	AddedAt string  `json:"addedAt"`
}

// Wishlist is the set of saved products for a user.
type Wishlist struct {
	ID     string         `json:"_id"`
	UserID string         `json:"user"`
	Items  []WishlistItem `json:"wishlistItems"`
}

// UserSummary is the populated user sub-record embedded in "Detailed"
// feedback shapes.
type UserSummary struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Rating is a user's numeric product rating.
type Rating struct {
	ID        string  `json:"_id"`
	UserID    string  `json:"user"`
	ProductID string  `json:"product"`
	Value     float64 `json:"rating"`
	CreatedAt string  `json:"createdAt"`
}

// RatingDetailed embeds the populated user record.
type RatingDetailed struct {
	ID        string      `json:"_id"`
	User      UserSummary `json:"user"`
	ProductID string      `json:"product"`
	Value     float64     `json:"rating"`
	CreatedAt string      `json:"createdAt"`
}

// Review is a user's textual product review.
type Review struct {
	ID        string `json:"_id"`
	UserID    string `json:"user"`
	ProductID string `json:"product"`
	Comment   string `json:"review"`
	CreatedAt string `json:"createdAt"`
}

// ReviewDetailed embeds the populated user record.
type ReviewDetailed struct {
	ID        string      `json:"_id"`
	User      UserSummary `json:"user"`
	ProductID string      `json:"product"`
	Comment   string      `json:"review"`
	CreatedAt string      `json:"createdAt"`
}

// RatingRequest creates or updates a rating.
type RatingRequest struct {
	ProductID string  `json:"productId"`
	Value     float64 `json:"rating"`
}

// ReviewRequest creates or updates a review.
type ReviewRequest struct {
	ProductID string `json:"productId"`
	Comment   string `json:"review"`
}
