package app

import "github.com/dwikikusuma/retail-checkout/internal/catalog/domain"

type ProductRepo interface {
	Create(p *domain.Product) (*domain.Product, error)
	Get(id string) (*domain.Product, error)
	List() []*domain.Product
}
