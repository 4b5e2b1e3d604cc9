package services

import (
	"errors"

	"github.com/azamatp047/shukrona-backend/entity"
	"github.com/azamatp047/shukrona-backend/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	DB   *gorm.DB
	Repo *repository.ProductRepository
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository) *ProductService {
	return &ProductService{DB: db, Repo: repo}
}

type CreateProductReq struct {
	Name      string `json:"name" binding:"required"`
	BuyPrice  int64  `json:"buyPrice" binding:"min=0"`
	SellPrice int64  `json:"sellPrice" binding:"min=0"`
	Stock     int    `json:"stock" binding:"min=0"`
	Image     string `json:"image"`
}

func (s *ProductService) Create(req *CreateProductReq) (*entity.Product, error) {
	product := &entity.Product{
		Name:      req.Name,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		Stock:     req.Stock,
		Status:    entity.ProductActive,
		Image:     req.Image,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) ListActive() ([]entity.Product, error) {
	return s.Repo.ListActive()
}

// UpdateProductReq carries pointers so a request can change one field
// without touching the rest. Price edits here never rewrite snapshots
// already taken by order items.
type UpdateProductReq struct {
	Name      *string `json:"name"`
	BuyPrice  *int64  `json:"buyPrice"`
	SellPrice *int64  `json:"sellPrice"`
	Image     *string `json:"image"`
}

func (s *ProductService) Update(id uint, req *UpdateProductReq) (*entity.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.BuyPrice != nil {
		product.BuyPrice = *req.BuyPrice
	}
	if req.SellPrice != nil {
		product.SellPrice = *req.SellPrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) AddStock(id uint, qty int) (*entity.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddStock(tx, id, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete is always soft: the row survives for order-item references.
func (s *ProductService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.SoftDelete(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}
		return nil
	})
}
