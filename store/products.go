package store

import (
	"sort"
	"sync"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// SortKey selects the ordering of the filtered product view
type SortKey string

const (
	SortLatest    SortKey = "latest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRatings   SortKey = "ratings"
)

// Filters is the active filter criteria. An empty metal or polish set means
// no restriction on that attribute.
type Filters struct {
	PriceMin   float64
	PriceMax   float64
	MetalType  []string
	PolishType []string
}

// FilterUpdate carries a partial filter change; nil fields are left as they are
type FilterUpdate struct {
	PriceMin   *float64
	PriceMax   *float64
	MetalType  *[]string
	PolishType *[]string
}

// DefaultPriceMax is the upper price bound before any filter is applied
const DefaultPriceMax = 1000000

// Products holds the full catalog as fetched, the active filter and sort
// criteria, and the derived filtered+sorted view. The view is recomputed
// wholesale by RecomputeView; changing filters or sort does not touch it
// until the caller asks.
type Products struct {
	mu              sync.RWMutex
	products        []models.Product
	filtered        []models.Product
	categories      []models.Category
	selectedProduct *models.Product
	filters         Filters
	sortBy          SortKey
	loading         bool
	err             string
}

// NewProducts returns an empty products store with default filters
func NewProducts() *Products {
	return &Products{
		filters: Filters{PriceMin: 0, PriceMax: DefaultPriceMax},
		sortBy:  SortLatest,
	}
}

// SetProducts replaces the catalog and resets the view to the unfiltered list
func (p *Products) SetProducts(products []models.Product) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.products = make([]models.Product, len(products))
	copy(p.products, products)
	p.filtered = make([]models.Product, len(products))
	copy(p.filtered, products)
}

// SetCategories replaces the category list
func (p *Products) SetCategories(categories []models.Category) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.categories = make([]models.Category, len(categories))
	copy(p.categories, categories)
}

// SetSelectedProduct sets the detail-view product; nil clears it
func (p *Products) SetSelectedProduct(product *models.Product) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedProduct = product
}

// SetFilters merges a partial filter change into the current criteria. The
// caller is responsible for invoking RecomputeView afterwards.
func (p *Products) SetFilters(update FilterUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if update.PriceMin != nil {
		p.filters.PriceMin = *update.PriceMin
	}
	if update.PriceMax != nil {
		p.filters.PriceMax = *update.PriceMax
	}
	if update.MetalType != nil {
		p.filters.MetalType = append([]string(nil), (*update.MetalType)...)
	}
	if update.PolishType != nil {
		p.filters.PolishType = append([]string(nil), (*update.PolishType)...)
	}
}

// SetSortBy replaces the active sort key
func (p *Products) SetSortBy(key SortKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sortBy = key
}

// RecomputeView rebuilds the filtered view from scratch: filter the full
// catalog by the current criteria, then sort the survivors by the active
// key. Must be called after any change to the catalog, filters or sort key.
func (p *Products) RecomputeView() {
	p.mu.Lock()
	defer p.mu.Unlock()

	filtered := make([]models.Product, 0, len(p.products))
	for _, product := range p.products {
		if p.filters.matches(product) {
			filtered = append(filtered, product)
		}
	}

	switch p.sortBy {
	case SortLatest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRatings:
		sort.SliceStable(filtered, func(i, j int) bool {
			return rating(filtered[i]) > rating(filtered[j])
		})
	}

	p.filtered = filtered
}

func (f Filters) matches(product models.Product) bool {
	if product.Price < f.PriceMin || product.Price > f.PriceMax {
		return false
	}
	if len(f.MetalType) > 0 && !contains(f.MetalType, product.MetalType) {
		return false
	}
	if len(f.PolishType) > 0 && !contains(f.PolishType, product.PolishType) {
		return false
	}
	return true
}

// rating treats a missing rating as zero for sorting purposes
func rating(product models.Product) float64 {
	if product.Rating == nil {
		return 0
	}
	return *product.Rating
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// SetLoading flags an in-flight catalog fetch
func (p *Products) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
}

// SetError records the last fetch error message; empty clears it
func (p *Products) SetError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = msg
}

// Products returns a copy of the full catalog as fetched
func (p *Products) Products() []models.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Product, len(p.products))
	copy(out, p.products)
	return out
}

// Filtered returns a copy of the derived filtered+sorted view
func (p *Products) Filtered() []models.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Product, len(p.filtered))
	copy(out, p.filtered)
	return out
}

// Categories returns a copy of the category list
func (p *Products) Categories() []models.Category {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// SelectedProduct returns the detail-view product, or nil
func (p *Products) SelectedProduct() *models.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selectedProduct
}

// Filters returns the active filter criteria
func (p *Products) Filters() Filters {
	p.mu.RLock()
	defer p.mu.RUnlock()
	f := p.filters
	f.MetalType = append([]string(nil), p.filters.MetalType...)
	f.PolishType = append([]string(nil), p.filters.PolishType...)
	return f
}

// SortBy returns the active sort key
func (p *Products) SortBy() SortKey {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sortBy
}

// Loading reports whether a catalog fetch is in flight
func (p *Products) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Error returns the last recorded fetch error message
func (p *Products) Error() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}
