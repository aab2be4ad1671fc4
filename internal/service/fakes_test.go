package service

import (
	"context"
	"strings"
	"sync"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	pkgdto "github.com/quickbasket/quickbasket-api/pkg/dto"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]domain.Product)}
}

func (r *fakeProductRepo) put(p domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) snapshot() map[primitive.ObjectID]domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make(map[primitive.ObjectID]domain.Product, len(r.products))
	for id, p := range r.products {
		copied[id] = p
	}
	return copied
}

func (r *fakeProductRepo) restore(saved map[primitive.ObjectID]domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = saved
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	return r.put(data).ID, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, param pkgdto.Filter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		if param.Keyword != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(param.Keyword)) {
			continue
		}
		if param.Category != "" && p.CategoryID.Hex() != param.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrProductNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[data.ID]; !ok {
		return errs.ErrProductNotFound
	}
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[productID]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.CountInStock < qty {
		return errs.ErrInsufficientStock
	}
	p.CountInStock -= qty
	r.products[id] = p
	return nil
}

type fakeOrderRepo struct {
	mu          sync.Mutex
	trxMu       sync.Mutex
	orders      []domain.Order
	productRepo *fakeProductRepo
}

func newFakeOrderRepo(productRepo *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{productRepo: productRepo}
}

func (r *fakeOrderRepo) put(o domain.Order) domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	r.orders = append(r.orders, o)
	return o
}

func (r *fakeOrderRepo) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	return r.put(data).ID, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, errs.ErrOrderNotFound
}

func (r *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

func (r *fakeOrderRepo) GetPaidOrders(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.IsPaid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetUndeliveredOrders(ctx context.Context, limit int64) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for i := len(r.orders) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if !r.orders[i].IsDelivered {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountOrders(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountOrdersByDelivered(ctx context.Context, delivered bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, o := range r.orders {
		if o.IsDelivered == delivered {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) MarkOrderPaid(ctx context.Context, id primitive.ObjectID, paidAt int64, result domain.PaymentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].IsPaid = true
			r.orders[i].PaidAt = paidAt
			r.orders[i].PaymentResult = &result
			r.orders[i].UpdatedAt = paidAt
			return nil
		}
	}
	return errs.ErrOrderNotFound
}

func (r *fakeOrderRepo) MarkOrderDelivered(ctx context.Context, id primitive.ObjectID, deliveredAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].IsDelivered = true
			r.orders[i].DeliveredAt = deliveredAt
			r.orders[i].UpdatedAt = deliveredAt
			return nil
		}
	}
	return errs.ErrOrderNotFound
}

// HandleTrx mirrors the store's transactionality: transactions serialize and
// an error from fn restores every write made inside it.
func (r *fakeOrderRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.trxMu.Lock()
	defer r.trxMu.Unlock()

	savedProducts := r.productRepo.snapshot()
	r.mu.Lock()
	savedOrders := make([]domain.Order, len(r.orders))
	copy(savedOrders, r.orders)
	r.mu.Unlock()

	if err := fn(ctx); err != nil {
		r.productRepo.restore(savedProducts)
		r.mu.Lock()
		r.orders = savedOrders
		r.mu.Unlock()
		return err
	}

	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories []domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{}
}

func (r *fakeCategoryRepo) put(c domain.Category) domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.categories = append(r.categories, c)
	return c
}

func (r *fakeCategoryRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Category{}, errs.ErrNotFound
}

func (r *fakeCategoryRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Category{}, errs.ErrNotFound
}

func (r *fakeCategoryRepo) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	r.mu.Lock()
	for _, c := range r.categories {
		if c.Name == data.Name {
			r.mu.Unlock()
			return primitive.NilObjectID, errs.ErrDuplicateName
		}
	}
	r.mu.Unlock()
	return r.put(data).ID, nil
}

type fakeConfigRepo struct {
	mu   sync.Mutex
	docs []domain.SiteConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{}
}

func (r *fakeConfigRepo) GetConfig(ctx context.Context) (domain.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.docs) == 0 {
		return domain.SiteConfig{}, errs.ErrNotFound
	}
	return r.docs[0], nil
}

func (r *fakeConfigRepo) InsertConfig(ctx context.Context, data domain.SiteConfig) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.docs = append(r.docs, data)
	return data.ID, nil
}

func (r *fakeConfigRepo) ReplaceConfig(ctx context.Context, data domain.SiteConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == data.ID {
			r.docs[i] = data
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeConfigRepo) DeleteConfigs(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = nil
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) put(u domain.User) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
