package woocommerce

// Resource shapes mirroring the WooCommerce REST v3 schemas. Per
// WooCommerce convention ids are integers and money fields are strings.
// All fields are optional on reads except the resource id; create
// requests declare their minimal required fields explicitly.

// Image is an attached product image.
type Image struct {
	ID   int    `json:"id,omitempty"`
	Src  string `json:"src,omitempty"`
	Name string `json:"name,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// CategoryRef is the embedded category reference inside a product.
type CategoryRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// Attribute is a product attribute with its selectable options.
type Attribute struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Position  int      `json:"position,omitempty"`
	Visible   bool     `json:"visible,omitempty"`
	Variation bool     `json:"variation,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// MetaData is a key-value extension record present on most resources.
type MetaData struct {
	ID    int         `json:"id,omitempty"`
	Key   string      `json:"key,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// Product is the WooCommerce product shape.
type Product struct {
	ID               int           `json:"id"`
	Name             string        `json:"name,omitempty"`
	Slug             string        `json:"slug,omitempty"`
	Permalink        string        `json:"permalink,omitempty"`
	Type             string        `json:"type,omitempty"`
	Status           string        `json:"status,omitempty"`
	Featured         bool          `json:"featured,omitempty"`
	Description      string        `json:"description,omitempty"`
	ShortDescription string        `json:"short_description,omitempty"`
	SKU              string        `json:"sku,omitempty"`
	Price            string        `json:"price,omitempty"`
	RegularPrice     string        `json:"regular_price,omitempty"`
	SalePrice        string        `json:"sale_price,omitempty"`
	OnSale           bool          `json:"on_sale,omitempty"`
	Purchasable      bool          `json:"purchasable,omitempty"`
	TotalSales       int           `json:"total_sales,omitempty"`
	ManageStock      bool          `json:"manage_stock,omitempty"`
	StockQuantity    *int          `json:"stock_quantity,omitempty"`
	StockStatus      string        `json:"stock_status,omitempty"`
	Weight           string        `json:"weight,omitempty"`
	AverageRating    string        `json:"average_rating,omitempty"`
	RatingCount      int           `json:"rating_count,omitempty"`
	ParentID         int           `json:"parent_id,omitempty"`
	Categories       []CategoryRef `json:"categories,omitempty"`
	Images           []Image       `json:"images,omitempty"`
	Attributes       []Attribute   `json:"attributes,omitempty"`
	MetaData         []MetaData    `json:"meta_data,omitempty"`
	DateCreated      string        `json:"date_created,omitempty"`
	DateModified     string        `json:"date_modified,omitempty"`
}

// Category is a standalone product category resource.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Description string `json:"description,omitempty"`
	Display     string `json:"display,omitempty"`
	Image       *Image `json:"image,omitempty"`
	MenuOrder   int    `json:"menu_order,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// Billing is the billing address sub-record.
type Billing struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Shipping is the shipping address sub-record.
type Shipping struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Customer is the WooCommerce customer resource.
type Customer struct {
	ID           int        `json:"id"`
	Email        string     `json:"email,omitempty"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Username     string     `json:"username,omitempty"`
	Role         string     `json:"role,omitempty"`
	Billing      *Billing   `json:"billing,omitempty"`
	Shipping     *Shipping  `json:"shipping,omitempty"`
	IsPayingCust bool       `json:"is_paying_customer,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	MetaData     []MetaData `json:"meta_data,omitempty"`
	DateCreated  string     `json:"date_created,omitempty"`
}

// CreateCustomerRequest requires an email; everything else is optional.
type CreateCustomerRequest struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	Password  string    `json:"password,omitempty"`
	Billing   *Billing  `json:"billing,omitempty"`
	Shipping  *Shipping `json:"shipping,omitempty"`
}

// LineItem is one order line.
type LineItem struct {
	ID          int        `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	ProductID   int        `json:"product_id,omitempty"`
	VariationID int        `json:"variation_id,omitempty"`
	Quantity    int        `json:"quantity,omitempty"`
	Subtotal    string     `json:"subtotal,omitempty"`
	Total       string     `json:"total,omitempty"`
	SKU         string     `json:"sku,omitempty"`
	Price       float64    `json:"price,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// ShippingLine is a shipping charge on an order.
type ShippingLine struct {
	ID          int    `json:"id,omitempty"`
	MethodTitle string `json:"method_title,omitempty"`
	MethodID    string `json:"method_id,omitempty"`
	Total       string `json:"total,omitempty"`
}

// CouponLine records a coupon applied to an order.
type CouponLine struct {
	ID       int    `json:"id,omitempty"`
	Code     string `json:"code,omitempty"`
	Discount string `json:"discount,omitempty"`
}

// Order is the WooCommerce order resource.
type Order struct {
	ID                 int            `json:"id"`
	ParentID           int            `json:"parent_id,omitempty"`
	Number             string         `json:"number,omitempty"`
	OrderKey           string         `json:"order_key,omitempty"`
	Status             string         `json:"status,omitempty"`
	Currency           string         `json:"currency,omitempty"`
	CustomerID         int            `json:"customer_id,omitempty"`
	CustomerNote       string         `json:"customer_note,omitempty"`
	Billing            *Billing       `json:"billing,omitempty"`
	Shipping           *Shipping      `json:"shipping,omitempty"`
	PaymentMethod      string         `json:"payment_method,omitempty"`
	PaymentMethodTitle string         `json:"payment_method_title,omitempty"`
	TransactionID      string         `json:"transaction_id,omitempty"`
	DiscountTotal      string         `json:"discount_total,omitempty"`
	ShippingTotal      string         `json:"shipping_total,omitempty"`
	TotalTax           string         `json:"total_tax,omitempty"`
	Total              string         `json:"total,omitempty"`
	LineItems          []LineItem     `json:"line_items,omitempty"`
	ShippingLines      []ShippingLine `json:"shipping_lines,omitempty"`
	CouponLines        []CouponLine   `json:"coupon_lines,omitempty"`
	MetaData           []MetaData     `json:"meta_data,omitempty"`
	DateCreated        string         `json:"date_created,omitempty"`
	DatePaid           string         `json:"date_paid,omitempty"`
	DateCompleted      string         `json:"date_completed,omitempty"`
}

// CreateOrderRequest requires the payment method fields; all other
// fields are optional.
type CreateOrderRequest struct {
	PaymentMethod      string         `json:"payment_method"`
	PaymentMethodTitle string         `json:"payment_method_title"`
	SetPaid            bool           `json:"set_paid"`
	CustomerID         int            `json:"customer_id,omitempty"`
	Status             string         `json:"status,omitempty"`
	CustomerNote       string         `json:"customer_note,omitempty"`
	Billing            *Billing       `json:"billing,omitempty"`
	Shipping           *Shipping      `json:"shipping,omitempty"`
	LineItems          []LineItem     `json:"line_items,omitempty"`
	ShippingLines      []ShippingLine `json:"shipping_lines,omitempty"`
	CouponLines        []CouponLine   `json:"coupon_lines,omitempty"`
}

// OrderNote is an internal or customer-facing note on an order.
type OrderNote struct {
	ID           int    `json:"id"`
	Author       string `json:"author,omitempty"`
	Note         string `json:"note,omitempty"`
	CustomerNote bool   `json:"customer_note,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
}

// Refund is an order refund resource.
type Refund struct {
	ID          int        `json:"id"`
	Amount      string     `json:"amount,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	RefundedBy  int        `json:"refunded_by,omitempty"`
	LineItems   []LineItem `json:"line_items,omitempty"`
	DateCreated string     `json:"date_created,omitempty"`
}

// CreateRefundRequest requires the refund amount.
type CreateRefundRequest struct {
	Amount    string     `json:"amount"`
	Reason    string     `json:"reason,omitempty"`
	APIRefund bool       `json:"api_refund,omitempty"`
	LineItems []LineItem `json:"line_items,omitempty"`
}

// Coupon is a discount coupon resource.
type Coupon struct {
	ID               int      `json:"id"`
	Code             string   `json:"code,omitempty"`
	Amount           string   `json:"amount,omitempty"`
	DiscountType     string   `json:"discount_type,omitempty"`
	Description      string   `json:"description,omitempty"`
	DateExpires      string   `json:"date_expires,omitempty"`
	UsageCount       int      `json:"usage_count,omitempty"`
	UsageLimit       *int     `json:"usage_limit,omitempty"`
	IndividualUse    bool     `json:"individual_use,omitempty"`
	ProductIDs       []int    `json:"product_ids,omitempty"`
	ExcludedProducts []int    `json:"excluded_product_ids,omitempty"`
	FreeShipping     bool     `json:"free_shipping,omitempty"`
	MinimumAmount    string   `json:"minimum_amount,omitempty"`
	MaximumAmount    string   `json:"maximum_amount,omitempty"`
	EmailRestrictions []string `json:"email_restrictions,omitempty"`
	DateCreated      string   `json:"date_created,omitempty"`
}

// TaxRate is a tax rate resource.
type TaxRate struct {
	ID       int    `json:"id"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	City     string `json:"city,omitempty"`
	Rate     string `json:"rate,omitempty"`
	Name     string `json:"name,omitempty"`
	Priority int    `json:"priority,omitempty"`
	Compound bool   `json:"compound,omitempty"`
	Shipping bool   `json:"shipping,omitempty"`
	Order    int    `json:"order,omitempty"`
	Class    string `json:"class,omitempty"`
}

// TaxClass is a named tax class.
type TaxClass struct {
	Slug string `json:"slug"`
	Name string `json:"name,omitempty"`
}

// ShippingZone groups shipping methods by region.
type ShippingZone struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Order int    `json:"order,omitempty"`
}

// ShippingZoneLocation binds a zone to a region code.
type ShippingZoneLocation struct {
	Code string `json:"code"`
	Type string `json:"type"` // postcode, state, country, continent
}

// ShippingZoneMethod is a shipping method enabled in a zone.
type ShippingZoneMethod struct {
	InstanceID  int    `json:"instance_id"`
	Title       string `json:"title,omitempty"`
	Order       int    `json:"order,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
	MethodID    string `json:"method_id,omitempty"`
	MethodTitle string `json:"method_title,omitempty"`
}

// SettingGroup is a group of related settings.
type SettingGroup struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

// Setting is one option inside a settings group.
type Setting struct {
	ID          string      `json:"id"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Value       interface{} `json:"value,omitempty"`
}

// Webhook is a registered event callback.
type Webhook struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Status      string `json:"status,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Resource    string `json:"resource,omitempty"`
	Event       string `json:"event,omitempty"`
	DeliveryURL string `json:"delivery_url,omitempty"`
	Secret      string `json:"secret,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
}

// CreateWebhookRequest requires a topic and delivery URL.
type CreateWebhookRequest struct {
	Name        string `json:"name,omitempty"`
	Topic       string `json:"topic"`
	DeliveryURL string `json:"delivery_url"`
	Secret      string `json:"secret,omitempty"`
}

// PaymentGateway is a configured payment gateway.
type PaymentGateway struct {
	ID                string             `json:"id"`
	Title             string             `json:"title,omitempty"`
	Description       string             `json:"description,omitempty"`
	Order             interface{}        `json:"order,omitempty"`
	Enabled           bool               `json:"enabled,omitempty"`
	MethodTitle       string             `json:"method_title,omitempty"`
	MethodDescription string             `json:"method_description,omitempty"`
	Settings          map[string]Setting `json:"settings,omitempty"`
}

// CountryState is a state/province within a country.
type CountryState struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// Country is a selling country with its states.
type Country struct {
	Code   string         `json:"code"`
	Name   string         `json:"name,omitempty"`
	States []CountryState `json:"states,omitempty"`
}

// Currency is a supported currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// SystemStatus is the store environment report. Only the sections the
// orchestration layer inspects are typed; the rest decode into generic
// maps.
type SystemStatus struct {
	Environment struct {
		HomeURL    string `json:"home_url"`
		SiteURL    string `json:"site_url"`
		Version    string `json:"version"`
		WPVersion  string `json:"wp_version"`
		PHPVersion string `json:"php_version"`
	} `json:"environment"`
	Database map[string]interface{}   `json:"database,omitempty"`
	Settings map[string]interface{}   `json:"settings,omitempty"`
	Security map[string]interface{}   `json:"security,omitempty"`
	Pages    []map[string]interface{} `json:"pages,omitempty"`
}
