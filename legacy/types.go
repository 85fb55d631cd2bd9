package legacy

// SortKey is the closed set of product sort orders. The wire string is
// produced only at the query boundary so a typo cannot silently reach
// the backend.
type SortKey int

const (
	SortDefault SortKey = iota
	SortPriceLowToHigh
	SortPriceHighToLow
	SortNewest
	SortPopularity
)

func (s SortKey) wire() string {
	switch s {
	case SortPriceLowToHigh:
		return "price_low"
	case SortPriceHighToLow:
		return "price_high"
	case SortNewest:
		return "newest"
	case SortPopularity:
		return "popularity"
	default:
		return ""
	}
}

// StockStatus is the closed set of stock filters.
type StockStatus int

const (
	StockAny StockStatus = iota
	StockIn
	StockOut
)

func (s StockStatus) wire() string {
	switch s {
	case StockIn:
		return "in_stock"
	case StockOut:
		return "out_of_stock"
	default:
		return ""
	}
}

// OrderStatus is the closed set of order states the backend reports.
type OrderStatus int

const (
	OrderStatusUnknown OrderStatus = iota
	OrderStatusPending
	OrderStatusConfirmed
	OrderStatusShipped
	OrderStatusDelivered
	OrderStatusCancelled
)

var orderStatusWire = map[OrderStatus]string{
	OrderStatusPending:   "pending",
	OrderStatusConfirmed: "confirmed",
	OrderStatusShipped:   "shipped",
	OrderStatusDelivered: "delivered",
	OrderStatusCancelled: "cancelled",
}

func (s OrderStatus) String() string {
	if w, ok := orderStatusWire[s]; ok {
		return w
	}
	return "unknown"
}

// ParseOrderStatus maps a wire status string to an OrderStatus.
// Unrecognized strings map to OrderStatusUnknown rather than failing,
// since the backend adds states without notice.
func ParseOrderStatus(s string) OrderStatus {
	for k, w := range orderStatusWire {
		if w == s {
			return k
		}
	}
	return OrderStatusUnknown
}
