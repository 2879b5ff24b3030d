package app

import (
	"errors"
	"strings"
	"time"

	"github.com/dwikikusuma/retail-checkout/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) RegisterExpirable(name string, price decimal.Decimal, stock int, expiry time.Time, weight float64) (*domain.Product, error) {
	name, err := validate(name, price, stock)
	if err != nil {
		return nil, err
	}
	if weight <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Create(domain.NewExpirable(name, price, stock, expiry, weight))
}

func (s *Service) RegisterNonExpirable(name string, price decimal.Decimal, stock int, weight float64) (*domain.Product, error) {
	name, err := validate(name, price, stock)
	if err != nil {
		return nil, err
	}
	if weight <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Create(domain.NewNonExpirable(name, price, stock, weight))
}

func (s *Service) RegisterDigital(name string, price decimal.Decimal, stock int) (*domain.Product, error) {
	name, err := validate(name, price, stock)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(domain.NewDigital(name, price, stock))
}

func (s *Service) GetProduct(id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(id)
}

func (s *Service) ListProducts() []*domain.Product {
	return s.repo.List()
}

func validate(name string, price decimal.Decimal, stock int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.IsNegative() || stock < 0 {
		return "", ErrInvalidInput
	}
	return name, nil
}
