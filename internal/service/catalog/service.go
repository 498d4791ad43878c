package catalog

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"zepto-clone/internal/domain"
	catalogrepo "zepto-clone/internal/repository/catalog"
)

// Icon handles for the known source categories. Unknown categories fall back
// to the shopping bag.
const (
	IconShoppingBag   = "shopping-bag"
	IconHeadphones    = "headphones"
	IconRings         = "rings"
	IconMensFashion   = "mens-fashion"
	IconWomensFashion = "womens-fashion"
)

var categoryIcons = map[string]string{
	"electronics":      IconHeadphones,
	"jewelery":         IconRings,
	"men's clothing":   IconMensFashion,
	"women's clothing": IconWomensFashion,
}

// Service exposes the catalog as lazy one-shot feeds and maps the raw source
// category strings onto display categories.
type Service struct {
	client catalogrepo.Client
}

// New builds a Service over the given client.
func New(client catalogrepo.Client) *Service {
	return &Service{client: client}
}

// Products returns a feed of the full product list.
func (s *Service) Products() *Feed[[]domain.Product] {
	return NewFeed(s.client.FetchProducts)
}

// ProductsByCategory returns a feed of the products filed under the raw
// source category string.
func (s *Service) ProductsByCategory(category string) *Feed[[]domain.Product] {
	return NewFeed(func(ctx context.Context) ([]domain.Product, error) {
		return s.client.FetchProductsByCategory(ctx, category)
	})
}

// RawCategories returns a feed of the unmapped category strings as the
// source reports them.
func (s *Service) RawCategories() *Feed[[]string] {
	return NewFeed(s.client.FetchCategories)
}

// Categories returns a feed of display categories: the synthetic "All" entry
// first, then one entry per source string in source order with ids from 1.
func (s *Service) Categories() *Feed[[]domain.Category] {
	return NewFeed(func(ctx context.Context) ([]domain.Category, error) {
		raw, err := s.client.FetchCategories(ctx)
		if err != nil {
			return nil, err
		}
		return MapCategories(raw), nil
	})
}

// CategoryByIDOrName resolves q against the current category list. A numeric
// q matches by id; anything else matches by case-insensitive name, then by
// case-insensitive name with all whitespace stripped from both sides. A miss
// returns domain.ErrNotFound, a recoverable condition distinct from a
// transport failure.
func (s *Service) CategoryByIDOrName(ctx context.Context, q string) (*domain.Category, error) {
	raw, err := s.client.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories := MapCategories(raw)

	if id, convErr := strconv.Atoi(q); convErr == nil {
		for i := range categories {
			if categories[i].ID == id {
				return &categories[i], nil
			}
		}
		return nil, domain.ErrNotFound
	}

	for i := range categories {
		if strings.EqualFold(categories[i].Name, q) {
			return &categories[i], nil
		}
	}
	stripped := stripSpace(q)
	for i := range categories {
		if strings.EqualFold(stripSpace(categories[i].Name), stripped) {
			return &categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// MapCategories builds the display category list from raw source strings:
// the "All" aggregate gets id 0, the rest keep source order with sequential
// ids starting at 1 and no dedup beyond what the source provides.
func MapCategories(raw []string) []domain.Category {
	categories := make([]domain.Category, 0, len(raw)+1)
	categories = append(categories, domain.Category{
		ID:   domain.AllCategoryID,
		Name: "All",
		Icon: IconShoppingBag,
	})
	for i, name := range raw {
		icon, ok := categoryIcons[strings.ToLower(name)]
		if !ok {
			icon = IconShoppingBag
		}
		categories = append(categories, domain.Category{
			ID:   i + 1,
			Name: FormatCategoryName(name),
			Icon: icon,
		})
	}
	return categories
}

// FormatCategoryName title-cases each whitespace-separated word.
func FormatCategoryName(name string) string {
	words := strings.Split(name, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
