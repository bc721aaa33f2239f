package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/pkg/pagination"
	"github.com/fulcitt/fulcitt-api/pkg/printer"
)

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	err      error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	if product.ID == uuid.Nil {
		for _, existing := range r.products {
			if existing.Name == product.Name {
				existing.Category = product.Category
				existing.Price = product.Price
				existing.IsDeleted = product.IsDeleted
				return nil
			}
		}
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context, includeDeleted bool) ([]entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Product
	for _, p := range r.products {
		if p.IsDeleted && !includeDeleted {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.IsDeleted = true
	return true, nil
}

// fakeSaleRepo is an in-memory SaleRepository that counts writes so tests
// can assert nothing was persisted on a failed commit.
type fakeSaleRepo struct {
	sales       map[uuid.UUID]*entity.Sale
	createCalls int
	createErr   error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	sale.ID = uuid.New()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].SaleID = sale.ID
	}
	sale.Items = items
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListAllWithItems(ctx context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) SetPaymentMethod(ctx context.Context, id uuid.UUID, method string) (bool, error) {
	s, ok := r.sales[id]
	if !ok {
		return false, nil
	}
	s.PaymentMethod = &method
	return true, nil
}

// fakeSettingsRepo is an in-memory SettingsRepository.
type fakeSettingsRepo struct {
	values map[string]string
	err    error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (r *fakeSettingsRepo) Get(ctx context.Context, key string) (*entity.AppSetting, error) {
	if r.err != nil {
		return nil, r.err
	}
	value, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return &entity.AppSetting{Key: key, Value: value}, nil
}

func (r *fakeSettingsRepo) Set(ctx context.Context, key, value string) error {
	if r.err != nil {
		return r.err
	}
	r.values[key] = value
	return nil
}

// recordingDriver captures the operations dispatched to it. failAfter makes
// the (failAfter+1)-th operation call fail, counting all ops after Init.
type recordingDriver struct {
	inits     int
	calls     []printer.Op
	failAfter int // -1 never fails
}

func newRecordingDriver() *recordingDriver {
	return &recordingDriver{failAfter: -1}
}

func (d *recordingDriver) record(op printer.Op) error {
	if d.failAfter >= 0 && len(d.calls) >= d.failAfter {
		return errors.New("device write failed")
	}
	d.calls = append(d.calls, op)
	return nil
}

func (d *recordingDriver) Init() error {
	d.inits++
	return nil
}

func (d *recordingDriver) WriteText(text string) error {
	return d.record(printer.WriteOp(text))
}

func (d *recordingDriver) SetFontSize(width, height int) error {
	return d.record(printer.SetFontOp(width, height))
}

func (d *recordingDriver) SetJustify(align int) error {
	return d.record(printer.SetJustifyOp(align))
}

func (d *recordingDriver) Feed() error {
	return d.record(printer.FeedOp())
}

func (d *recordingDriver) Cut() error {
	return d.record(printer.CutOp())
}

func (d *recordingDriver) Connected() bool {
	return true
}

func testProduct(name, category string, priceCents int64) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    priceCents,
	}
}

func testSale(items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{
		ID:       uuid.New(),
		SaleTime: time.Date(2026, 3, 14, 18, 30, 5, 0, time.UTC),
		Items:    items,
	}
}
