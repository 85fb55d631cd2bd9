package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/page3life/storefront-go/legacy"
	"github.com/page3life/storefront-go/woocommerce"
)

var (
	productsCategory string
	productsSearch   string
	productsPage     int
	productsLimit    int

	cartSize     string
	cartQuantity int

	wcPage    int
	wcPerPage int
	wcStatus  string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the legacy catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, _, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		products, err := lc.ListProducts(cmd.Context(), legacy.ProductQuery{
			Category: productsCategory,
			Search:   productsSearch,
			Page:     productsPage,
			Limit:    productsLimit,
		})
		if err != nil {
			return err
		}
		return printJSON(products)
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one legacy product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, _, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		product, err := lc.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(product)
	},
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, _, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		cart, err := lc.GetCart(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cart)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, _, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		resp, err := lc.AddToCart(cmd.Context(), legacy.AddToCartRequest{
			ProductID: args[0],
			Size:      cartSize,
			Quantity:  cartQuantity,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the account's orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, _, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		orders, err := lc.ListOrders(cmd.Context(), productsPage, productsLimit)
		if err != nil {
			return err
		}
		return printJSON(orders)
	},
}

var wcCmd = &cobra.Command{
	Use:   "wc",
	Short: "WooCommerce admin operations",
}

var wcProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List WooCommerce products",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, wc, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		products, err := wc.ListProducts(cmd.Context(), woocommerce.ProductListParams{
			Page:    wcPage,
			PerPage: wcPerPage,
			Status:  wcStatus,
		})
		if err != nil {
			return err
		}
		return printJSON(products)
	},
}

var wcOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List WooCommerce orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, wc, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		orders, err := wc.ListOrders(cmd.Context(), woocommerce.OrderListParams{
			Page:    wcPage,
			PerPage: wcPerPage,
			Status:  wcStatus,
		})
		if err != nil {
			return err
		}
		return printJSON(orders)
	},
}

var wcStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the store environment report",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, wc, shutdown, err := clients(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		status, err := wc.GetSystemStatus(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(status)
	},
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "filter by category id")
	productsCmd.Flags().StringVar(&productsSearch, "search", "", "free-text search")
	productsCmd.Flags().IntVar(&productsPage, "page", 0, "page number")
	productsCmd.Flags().IntVar(&productsLimit, "limit", 0, "page size")

	ordersCmd.Flags().IntVar(&productsPage, "page", 0, "page number")
	ordersCmd.Flags().IntVar(&productsLimit, "limit", 0, "page size")

	cartAddCmd.Flags().StringVar(&cartSize, "size", "", "size variant")
	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "quantity to add")
	cartCmd.AddCommand(cartAddCmd)

	wcProductsCmd.Flags().IntVar(&wcPage, "page", 0, "page number")
	wcProductsCmd.Flags().IntVar(&wcPerPage, "per-page", 0, "page size")
	wcProductsCmd.Flags().StringVar(&wcStatus, "status", "", "filter by status")
	wcOrdersCmd.Flags().IntVar(&wcPage, "page", 0, "page number")
	wcOrdersCmd.Flags().IntVar(&wcPerPage, "per-page", 0, "page size")
	wcOrdersCmd.Flags().StringVar(&wcStatus, "status", "", "filter by status")
	wcCmd.AddCommand(wcProductsCmd, wcOrdersCmd, wcStatusCmd)

	rootCmd.AddCommand(productsCmd, productCmd, cartCmd, ordersCmd, wcCmd)
}
