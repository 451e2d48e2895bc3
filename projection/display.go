package projection

import (
	"foxy-admin/models"
)

var orderStatusClasses = map[string]bool{
	"paid":       true,
	"processing": true,
	"shipped":    true,
	"completed":  true,
	"cancelled":  true,
}

var quoteStatusClasses = map[string]bool{
	"pending":   true,
	"quoted":    true,
	"accepted":  true,
	"completed": true,
	"cancelled": true,
}

// OrderStatusClass maps an order status to its badge CSS class.
func OrderStatusClass(status string) string {
	return statusClass(orderStatusClasses, status)
}

// QuoteStatusClass maps a quote status to its badge CSS class.
func QuoteStatusClass(status string) string {
	return statusClass(quoteStatusClasses, status)
}

// Product builds the display form of a product.
func Product(p models.Product) models.ProductDisplay {
	return models.ProductDisplay{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		ImageURL:    NormalizeImageURL(p.ImageURL),
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		Adoptable:   p.Adoptable,
	}
}

// Products maps Product over a slice.
func Products(products []models.Product) []models.ProductDisplay {
	out := make([]models.ProductDisplay, 0, len(products))
	for _, p := range products {
		out = append(out, Product(p))
	}
	return out
}

// Order builds the display form of an order.
func Order(o models.Order) models.OrderDisplay {
	line2 := ""
	if o.ShippingAddress.Line2 != nil {
		line2 = *o.ShippingAddress.Line2
	}

	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)

	return models.OrderDisplay{
		ID:             o.ID.Hex(),
		OrderReference: o.OrderReference,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		ShippingAddress: models.ShippingAddressDisplay{
			Line1:    o.ShippingAddress.Line1,
			Line2:    line2,
			City:     o.ShippingAddress.City,
			Postcode: o.ShippingAddress.Postcode,
			Country:  o.ShippingAddress.Country,
		},
		Items:              items,
		Subtotal:           o.Subtotal,
		ShippingCost:       o.ShippingCost,
		Total:              o.Total,
		Currency:           o.Currency,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		FormattedTotal:     FormatCurrency(o.Total),
		FormattedCreatedAt: FormatTimestamp(o.CreatedAt),
		StatusClass:        OrderStatusClass(o.Status),
	}
}

// Orders maps Order over a slice.
func Orders(orders []models.Order) []models.OrderDisplay {
	out := make([]models.OrderDisplay, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order(o))
	}
	return out
}

// Quote builds the display form of a badge quote.
func Quote(q models.CustomBadgeQuote) models.QuoteDisplay {
	doubleSided, sidedText := "no", "Single-sided"
	if q.DoubleSided {
		doubleSided, sidedText = "yes", "Double-sided"
	}

	imagePath := ""
	if q.ImagePath != nil {
		imagePath = *q.ImagePath
	}

	return models.QuoteDisplay{
		ID:                 q.ID.Hex(),
		NumColors:          q.NumColors,
		DoubleSided:        doubleSided,
		PrintSize:          q.PrintSize,
		Thickness:          q.Thickness,
		Email:              q.Email,
		ImagePath:          imagePath,
		EstimatedPrice:     q.EstimatedPrice,
		CreatedAt:          q.CreatedAt,
		Status:             q.Status,
		FormattedPrice:     FormatCurrency(q.EstimatedPrice),
		FormattedCreatedAt: FormatTimestamp(q.CreatedAt),
		StatusClass:        QuoteStatusClass(q.Status),
		SidedText:          sidedText,
	}
}

// Quotes maps Quote over a slice.
func Quotes(quotes []models.CustomBadgeQuote) []models.QuoteDisplay {
	out := make([]models.QuoteDisplay, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, Quote(q))
	}
	return out
}
