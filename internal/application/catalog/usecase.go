package catalog

import (
	"sort"
	"strings"

	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// AllCategories is the sidebar's "no category filter" sentinel.
const AllCategories = "All Products"

// UseCase read-only product browsing: search, filters and sorting over the
// catalog collaborator.
type UseCase struct {
	products repository.ProductCatalog
}

// NewUseCase builds the use case.
func NewUseCase(products repository.ProductCatalog) *UseCase {
	return &UseCase{products: products}
}

// List applies the filter and sort order and returns the matching products
// together with the category set for the filter sidebar.
func (uc *UseCase) List(f dto.ProductFilter) (*dto.ProductListResponse, error) {
	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	cats, err := uc.products.Categories()
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, f.SortBy)

	items := make([]dto.ProductResponse, 0, len(matched))
	for _, p := range matched {
		items = append(items, toResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items), Categories: cats}, nil
}

// GetByID returns one product or ErrNotFound.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toResponse(p)
	return &out, nil
}

func matches(p *entity.Product, f dto.ProductFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hay := strings.ToLower(p.Name + " " + p.Supplier + " " + p.Category)
		if !strings.Contains(hay, q) {
			return false
		}
	}
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	// Price ranges are half-open: [min, max).
	if f.MaxPrice != nil && p.Price.GreaterThanOrEqual(*f.MaxPrice) {
		return false
	}
	if f.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

func sortProducts(ps []*entity.Product, by string) {
	switch by {
	case dto.SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.LessThan(ps[j].Price) })
	case dto.SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.GreaterThan(ps[j].Price) })
	case dto.SortNameAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	case dto.SortStock:
		// In-stock first; catalog order otherwise.
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].InStock() && !ps[j].InStock() })
	}
}

func toResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		InStock:        p.InStock(),
		Category:       p.Category,
		Supplier:       p.Supplier,
		Image:          p.Image,
		Features:       p.Features,
		Specifications: p.Specifications,
	}
}
