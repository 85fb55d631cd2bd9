package legacy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/page3life/storefront-go/transport"
)

// ListRatings fetches the ratings of one product.
func (c *Client) ListRatings(ctx context.Context, productID string) ([]Rating, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]Rating](ctx, c.caller, transport.Request{
		Op:      "ratings.list",
		Method:  http.MethodGet,
		URL:     c.url("/ratings/product/" + url.PathEscape(productID)),
		Headers: headers,
	})
}

// ListRatingsDetailed fetches ratings with populated user records.
func (c *Client) ListRatingsDetailed(ctx context.Context, productID string) ([]RatingDetailed, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]RatingDetailed](ctx, c.caller, transport.Request{
		Op:      "ratings.listDetailed",
		Method:  http.MethodGet,
		URL:     c.url("/ratings/product/" + url.PathEscape(productID) + "/detailed"),
		Headers: headers,
	})
}

// CreateRating rates a product on behalf of the caller.
func (c *Client) CreateRating(ctx context.Context, req RatingRequest) (Rating, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Rating{}, err
	}
	return transport.Call[Rating](ctx, c.caller, transport.Request{
		Op:      "ratings.create",
		Method:  http.MethodPost,
		URL:     c.url("/ratings"),
		Headers: headers,
		Body:    req,
	})
}

// UpdateRating changes an existing rating.
func (c *Client) UpdateRating(ctx context.Context, ratingID string, req RatingRequest) (Rating, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Rating{}, err
	}
	return transport.Call[Rating](ctx, c.caller, transport.Request{
		Op:      "ratings.update",
		Method:  http.MethodPut,
		URL:     c.url("/ratings/" + url.PathEscape(ratingID)),
		Headers: headers,
		Body:    req,
	})
}

// DeleteRating removes a rating. The backend returns no body.
func (c *Client) DeleteRating(ctx context.Context, ratingID string) error {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return err
	}
	return transport.CallUnit(ctx, c.caller, transport.Request{
		Op:      "ratings.delete",
		Method:  http.MethodDelete,
		URL:     c.url("/ratings/" + url.PathEscape(ratingID)),
		Headers: headers,
	})
}

// ListReviews fetches the reviews of one product.
func (c *Client) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]Review](ctx, c.caller, transport.Request{
		Op:      "reviews.list",
		Method:  http.MethodGet,
		URL:     c.url("/reviews/product/" + url.PathEscape(productID)),
		Headers: headers,
	})
}

// ListReviewsDetailed fetches reviews with populated user records.
func (c *Client) ListReviewsDetailed(ctx context.Context, productID string) ([]ReviewDetailed, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]ReviewDetailed](ctx, c.caller, transport.Request{
		Op:      "reviews.listDetailed",
		Method:  http.MethodGet,
		URL:     c.url("/reviews/product/" + url.PathEscape(productID) + "/detailed"),
		Headers: headers,
	})
}

// CreateReview posts a review on behalf of the caller.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (Review, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Review{}, err
	}
	return transport.Call[Review](ctx, c.caller, transport.Request{
		Op:      "reviews.create",
		Method:  http.MethodPost,
		URL:     c.url("/reviews"),
		Headers: headers,
		Body:    req,
	})
}

// UpdateReview changes an existing review.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, req ReviewRequest) (Review, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Review{}, err
	}
	return transport.Call[Review](ctx, c.caller, transport.Request{
		Op:      "reviews.update",
		Method:  http.MethodPut,
		URL:     c.url("/reviews/" + url.PathEscape(reviewID)),
		Headers: headers,
		Body:    req,
	})
}

// DeleteReview removes a review. The backend returns no body.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return err
	}
	return transport.CallUnit(ctx, c.caller, transport.Request{
		Op:      "reviews.delete",
		Method:  http.MethodDelete,
		URL:     c.url("/reviews/" + url.PathEscape(reviewID)),
		Headers: headers,
	})
}
