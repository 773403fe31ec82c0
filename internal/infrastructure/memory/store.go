// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORE_DRIVER=memory en desarrollo local y como doble de pruebas;
// respeta las mismas restricciones de unicidad que el esquema PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/catalog"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.SessionRepository  = (*SessionRepo)(nil)
	_ repository.ProfileRepository  = (*ProfileRepo)(nil)
	_ repository.BusinessRepository = (*BusinessRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.ReviewRepository   = (*ReviewRepo)(nil)
	_ repository.FavoriteRepository = (*FavoriteRepo)(nil)
)

// Store tablas en memoria protegidas por un único mutex.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	sessions   map[string]entity.Session
	profiles   map[string]entity.Profile
	businesses map[string]entity.Business
	products   map[string]entity.Product
	reviews    map[string]entity.Review
	favorites  map[favoriteKey]entity.Favorite
}

type favoriteKey struct {
	userID     string
	businessID string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      map[string]entity.User{},
		sessions:   map[string]entity.Session{},
		profiles:   map[string]entity.Profile{},
		businesses: map[string]entity.Business{},
		products:   map[string]entity.Product{},
		reviews:    map[string]entity.Review{},
		favorites:  map[favoriteKey]entity.Favorite{},
	}
}

func (s *Store) Users() *UserRepo { return &UserRepo{s} }
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s} }
func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{s} }
func (s *Store) Businesses() *BusinessRepo { return &BusinessRepo{s} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{s} }
func (s *Store) Reviews() *ReviewRepo { return &ReviewRepo{s} }
func (s *Store) Favorites() *FavoriteRepo { return &FavoriteRepo{s} }

// CountBusinessesByOwner cuántos negocios tiene un dueño (usado en pruebas de duplicados).
func (s *Store) CountBusinessesByOwner(ownerID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.businesses {
		if b.OwnerID == ownerID {
			n++
		}
	}
	return n
}

// CountProfiles número de filas en profiles.
func (s *Store) CountProfiles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// ── users ────────────────────────────────────────────────────────────────────

// UserRepo tabla users.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ── sessions ─────────────────────────────────────────────────────────────────

// SessionRepo tabla sessions.
type SessionRepo struct{ s *Store }

func (r *SessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (r *SessionRepo) Revoke(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[id]
	if !ok || sess.RevokedAt != nil {
		return nil
	}
	now := time.Now()
	sess.RevokedAt = &now
	r.s.sessions[id] = sess
	return nil
}

// ── profiles ─────────────────────────────────────────────────────────────────

// ProfileRepo tabla profiles.
type ProfileRepo struct{ s *Store }

func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProfileRepo) UpsertRole(ctx context.Context, id, email string, role entity.Role) (*entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	p, ok := r.s.profiles[id]
	if !ok {
		p = entity.Profile{ID: id, CreatedAt: now}
	}
	p.Email = email
	p.Role = role
	p.UpdatedAt = now
	r.s.profiles[id] = p
	return &p, nil
}

func (r *ProfileRepo) UpdateContact(ctx context.Context, id, name, phone string) (*entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, nil
	}
	p.Name = name
	p.Phone = phone
	p.UpdatedAt = time.Now()
	r.s.profiles[id] = p
	return &p, nil
}

// ── businesses ───────────────────────────────────────────────────────────────

// BusinessRepo tabla businesses (owner_id único).
type BusinessRepo struct{ s *Store }

func (r *BusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.businesses {
		if b.OwnerID == business.OwnerID {
			return domain.ErrBusinessExists
		}
	}
	r.s.businesses[business.ID] = *business
	return nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BusinessRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.businesses {
		if b.OwnerID == ownerID {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (r *BusinessRepo) Update(ctx context.Context, business *entity.Business) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[business.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.businesses[business.ID] = *business
	return nil
}

func (r *BusinessRepo) List(ctx context.Context, limit, offset int) ([]*entity.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	all := make([]*entity.Business, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		b := b
		all = append(all, &b)
	}
	r.s.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (r *BusinessRepo) Search(ctx context.Context, q string, limit, offset int) ([]*entity.Business, error) {
	all, err := r.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	matched := all[:0]
	for _, b := range all {
		if catalog.Matches(b.Name, q) || catalog.Matches(b.Description, q) {
			matched = append(matched, b)
		}
	}
	return page(matched, limit, offset), nil
}

// ── products ─────────────────────────────────────────────────────────────────

// ProductRepo tabla products.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[product.BusinessID]; !ok {
		return domain.ErrNoBusiness
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.BusinessID == businessID {
			p := p
			list = append(list, &p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *ProductRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.products {
		if p.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

// ── reviews ──────────────────────────────────────────────────────────────────

// ReviewRepo tabla reviews.
type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *ReviewRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Review, error) {
	return r.list(ctx, func(rv entity.Review) bool {
		if rv.BusinessID == businessID {
			return true
		}
		p, ok := r.s.products[rv.ProductID]
		return ok && p.BusinessID == businessID
	})
}

func (r *ReviewRepo) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Review, error) {
	return r.list(ctx, func(rv entity.Review) bool { return rv.AuthorID == authorID })
}

// list filtra bajo el read lock y completa los campos de solo lectura (joins).
func (r *ReviewRepo) list(ctx context.Context, keep func(entity.Review) bool) ([]*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	var list []*entity.Review
	for _, rv := range r.s.reviews {
		if !keep(rv) {
			continue
		}
		rv := rv
		if p, ok := r.s.profiles[rv.AuthorID]; ok {
			rv.AuthorEmail = p.Email
		}
		if p, ok := r.s.products[rv.ProductID]; ok {
			rv.ProductName = p.Name
		}
		list = append(list, &rv)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// ── favorites ────────────────────────────────────────────────────────────────

// FavoriteRepo tabla favorites.
type FavoriteRepo struct{ s *Store }

func (r *FavoriteRepo) Add(ctx context.Context, fav *entity.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := favoriteKey{fav.UserID, fav.BusinessID}
	if _, ok := r.s.favorites[key]; ok {
		return nil
	}
	stored := *fav
	stored.Business = nil
	r.s.favorites[key] = stored
	return nil
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, businessID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.favorites, favoriteKey{userID, businessID})
	return nil
}

func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	var list []*entity.Favorite
	for k, f := range r.s.favorites {
		if k.userID != userID {
			continue
		}
		f := f
		if b, ok := r.s.businesses[k.businessID]; ok {
			b := b
			f.Business = &b
		}
		list = append(list, &f)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// ── transacciones ────────────────────────────────────────────────────────────

var _ ports.BusinessTxRunner = (*TxRunner)(nil)

// TxRunner serializa las altas de negocio. No hay rollback: los repos en memoria
// escriben una sola fila por operación.
type TxRunner struct {
	s  *Store
	mu sync.Mutex
}

// TxRunner devuelve el runner del almacén.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) RunForOwner(ctx context.Context, _ string, fn func(
	profiles repository.ProfileRepository,
	businesses repository.BusinessRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.s.Profiles(), t.s.Businesses())
}
