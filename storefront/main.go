// Command storefront is the terminal front end of the jewelry shop. It wires
// the REST client, the cart/products/orders stores and the cart persistence
// backend together, and maps each subcommand onto one page flow of the shop.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/api"
	"gitlab.connectwisedev.com/storefront-client/pkg/cache"
	"gitlab.connectwisedev.com/storefront-client/pkg/config"
	"gitlab.connectwisedev.com/storefront-client/pkg/storage"
	"gitlab.connectwisedev.com/storefront-client/store"
)

const usage = `Usage: storefront <command> [options]

Commands:
  products    list products (-sort, -metal, -polish, -min, -max)
  product     show one product: product <id>
  search      search the catalog: search <query>
  categories  list categories
  category    list a category's products: category <id>
  filters     show the available filter options
  cart        manage the cart: cart list|add|update|remove|clear
  login       log in (prompts for credentials)
  logout      log out of the current session
  register    create an account (prompts for details)
  checkout    place an order from the current cart
  orders      list your orders
  order       show one order: order <id>
  cancel      cancel a pending order: cancel <id>
`

// app bundles everything a command handler needs
type app struct {
	cfg      *config.Config
	client   *api.Client
	cart     *store.Cart
	products *store.Products
	orders   *store.Orders
	stdin    *bufio.Reader
}

func main() {
	log.SetFlags(0)
	config.LoadEnv()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cartStorage, cleanup, err := newCartStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cart storage: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	cart, err := store.NewCart(ctx, cartStorage)
	if err != nil {
		log.Fatalf("Failed to restore cart: %v", err)
	}

	a := &app{
		cfg:      cfg,
		client:   api.New(cfg.APIBaseURL, cfg.APITimeout),
		cart:     cart,
		products: store.NewProducts(),
		orders:   store.NewOrders(),
		stdin:    bufio.NewReader(os.Stdin),
	}
	if token := os.Getenv("API_TOKEN"); token != "" {
		a.client.SetToken(token)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		// Backend failures surface here; the flow that hit them has
		// already been abandoned without touching store state.
		log.Fatalf("Error: %v", err)
	}
}

// newCartStorage picks the persistence backend from configuration
func newCartStorage(cfg *config.Config) (storage.CartStorage, func(), error) {
	switch cfg.CartBackend {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStorage(redisClient.GetClient(), cfg.SessionID), redisClient.Close, nil
	case "memory":
		return storage.NewMemoryStorage(), func() {}, nil
	default:
		return storage.NewFileStorage(cfg.CartFile), func() {}, nil
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "products":
		return a.listProducts(ctx, args)
	case "product":
		return a.showProduct(ctx, args)
	case "search":
		return a.searchProducts(ctx, args)
	case "categories":
		return a.listCategories(ctx)
	case "category":
		return a.listCategoryProducts(ctx, args)
	case "filters":
		return a.showFilters(ctx)
	case "cart":
		return a.cartCommand(ctx, args)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout(ctx)
	case "register":
		return a.register(ctx)
	case "checkout":
		return a.checkout(ctx)
	case "orders":
		return a.listOrders(ctx)
	case "order":
		return a.showOrder(ctx, args)
	case "cancel":
		return a.cancelOrder(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// listProducts is the products page: fetch, filter, sort, render
func (a *app) listProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	sortBy := fs.String("sort", string(store.SortLatest), "sort key: latest, price-low, price-high, ratings")
	metal := fs.String("metal", "", "comma-separated metal types to keep")
	polish := fs.String("polish", "", "comma-separated polish types to keep")
	minPrice := fs.Float64("min", 0, "minimum price")
	maxPrice := fs.Float64("max", store.DefaultPriceMax, "maximum price")
	fs.Parse(args)

	a.products.SetLoading(true)
	products, err := a.client.Products(ctx, api.ProductQuery{})
	a.products.SetLoading(false)
	if err != nil {
		a.products.SetError(err.Error())
		return err
	}
	a.products.SetError("")
	a.products.SetProducts(products)

	update := store.FilterUpdate{PriceMin: minPrice, PriceMax: maxPrice}
	if *metal != "" {
		metals := splitList(*metal)
		update.MetalType = &metals
	}
	if *polish != "" {
		polishes := splitList(*polish)
		update.PolishType = &polishes
	}
	a.products.SetFilters(update)
	a.products.SetSortBy(store.SortKey(*sortBy))
	a.products.RecomputeView()

	renderProducts(a.products.Filtered())
	return nil
}

func (a *app) showProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront product <id>")
	}
	product, err := a.client.Product(ctx, args[0])
	if err != nil {
		return err
	}
	a.products.SetSelectedProduct(product)
	renderProductDetails(*product)
	return nil
}

func (a *app) searchProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: storefront search <query>")
	}
	products, err := a.client.SearchProducts(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.products.SetProducts(products)
	a.products.RecomputeView()
	renderProducts(a.products.Filtered())
	return nil
}

func (a *app) listCategories(ctx context.Context) error {
	categories, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	a.products.SetCategories(categories)
	for _, c := range categories {
		fmt.Printf("%-24s  %s\n", c.ID, c.Name)
	}
	return nil
}

// listCategoryProducts fetches the category first, then its products, the
// same two-step sequence the category page runs.
func (a *app) listCategoryProducts(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront category <id>")
	}
	category, err := a.client.Category(ctx, args[0])
	if err != nil {
		return err
	}
	products, err := a.client.CategoryProducts(ctx, category.ID, api.ProductQuery{})
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n\n", category.Name, category.Description)
	a.products.SetProducts(products)
	a.products.RecomputeView()
	renderProducts(a.products.Filtered())
	return nil
}

// showFilters renders the filter metadata the products page offers
func (a *app) showFilters(ctx context.Context) error {
	metals, err := a.client.MetalTypes(ctx)
	if err != nil {
		return err
	}
	polishes, err := a.client.PolishTypes(ctx)
	if err != nil {
		return err
	}
	priceRange, err := a.client.PriceRange(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Metal types:  %s\n", strings.Join(metals, ", "))
	fmt.Printf("Polish types: %s\n", strings.Join(polishes, ", "))
	fmt.Printf("Price range:  %.0f to %.0f\n", priceRange.Min, priceRange.Max)
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	a.orders.SetLoading(true)
	orders, err := a.client.Orders(ctx)
	a.orders.SetLoading(false)
	if err != nil {
		a.orders.SetError(err.Error())
		return err
	}
	a.orders.SetError("")
	a.orders.SetOrders(orders)
	renderOrders(a.orders.Orders())
	return nil
}

func (a *app) showOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront order <id>")
	}
	order, err := a.client.Order(ctx, args[0])
	if err != nil {
		return err
	}
	a.orders.SetSelectedOrder(order)
	renderOrderDetails(*order)
	return nil
}

// cancelOrder asks the backend to cancel an order and refreshes the detail view
func (a *app) cancelOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront cancel <order-id>")
	}
	order, err := a.client.UpdateOrder(ctx, args[0], models.OrderCancelled)
	if err != nil {
		return err
	}
	a.orders.SetSelectedOrder(order)
	fmt.Printf("Order %s is now %s.\n", order.ID, order.Status)
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.stdin.ReadString('\n')
	return strings.TrimSpace(line)
}
