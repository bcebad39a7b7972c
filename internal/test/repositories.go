package test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu      sync.Mutex
	ByEmail map[string]*model.User
	ByID    map[uuid.UUID]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless one already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by id or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		result = append(result, *u)
	}
	return result, nil
}

// UpdateRole changes the stored role of a user.
func (s *UserRepositoryStub) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Role = role
	return user, nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	mu         sync.Mutex
	Categories map[uuid.UUID]*model.Category
	Referenced map[uuid.UUID]bool
	Err        error
}

// NewCategoryRepositoryStub constructs stub with initialized maps.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{
		Categories: make(map[uuid.UUID]*model.Category),
		Referenced: make(map[uuid.UUID]bool),
	}
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, name, description string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c := &model.Category{ID: uuid.New(), Name: name, Description: description, CreatedAt: time.Now()}
	s.Categories[c.ID] = c
	return c, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Categories[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Categories[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c.Name = name
	c.Description = description
	return c, nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.Referenced[id] {
		return domainErrors.ErrConflict
	}
	delete(s.Categories, id)
	return nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	mu         sync.Mutex
	Products   map[uuid.UUID]*model.Product
	Referenced map[uuid.UUID]bool
	// MissingCategories simulates fk failures for product create/update.
	MissingCategories map[uuid.UUID]bool
	Err               error
}

// NewProductRepositoryStub constructs stub with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{
		Products:          make(map[uuid.UUID]*model.Product),
		Referenced:        make(map[uuid.UUID]bool),
		MissingCategories: make(map[uuid.UUID]bool),
	}
}

func (s *ProductRepositoryStub) Create(ctx context.Context, params repository.ProductParams) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.MissingCategories[params.CategoryID] {
		return nil, domainErrors.ErrNotFound
	}
	p := &model.Product{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Inventory:   params.Inventory,
		CategoryID:  params.CategoryID,
		CreatedAt:   time.Now(),
	}
	s.Products[p.ID] = p
	return p, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	return s.List(ctx, repository.ProductFilter{CategoryID: &categoryID})
}

func (s *ProductRepositoryStub) Update(ctx context.Context, id uuid.UUID, params repository.ProductParams) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if s.MissingCategories[params.CategoryID] {
		return nil, domainErrors.ErrNotFound
	}
	p.Name = params.Name
	p.Description = params.Description
	p.Price = params.Price
	p.Inventory = params.Inventory
	p.CategoryID = params.CategoryID
	return p, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.Referenced[id] {
		return domainErrors.ErrConflict
	}
	delete(s.Products, id)
	return nil
}
