package service

import (
	"context"
	"time"

	"lawmatters-backend/models"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. They mirror the
// Postgres repositories' contract: nil for not-found reads, a bool for
// guarded writes, and a version bump on every successful update.

type memoryUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

type memorySessionRepo struct {
	sessions map[string]*models.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, session *models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now().UTC()
	clone := *session
	r.sessions[session.TokenHash] = &clone
	return nil
}

func (r *memorySessionRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Session, error) {
	session, ok := r.sessions[tokenHash]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (r *memorySessionRepo) ExtendExpiry(_ context.Context, tokenHash string, expiresAt time.Time) error {
	if session, ok := r.sessions[tokenHash]; ok {
		session.ExpiresAt = expiresAt
	}
	return nil
}

func (r *memorySessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(r.sessions, tokenHash)
	return nil
}

type memoryCustomerRepo struct {
	customers   map[uuid.UUID]*models.Customer
	openMatters map[uuid.UUID]int

	// Optional cascade targets, mirroring the schema's ON DELETE CASCADE
	// from customers through matters to documents.
	matters   *memoryMatterRepo
	documents *memoryDocumentRepo
}

func newMemoryCustomerRepo() *memoryCustomerRepo {
	return &memoryCustomerRepo{
		customers:   make(map[uuid.UUID]*models.Customer),
		openMatters: make(map[uuid.UUID]int),
	}
}

// attachCascades links the dependent repos so Delete removes their rows
// the way the foreign keys do in Postgres.
func (r *memoryCustomerRepo) attachCascades(matters *memoryMatterRepo, documents *memoryDocumentRepo) {
	r.matters = matters
	r.documents = documents
}

func (r *memoryCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *memoryCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (r *memoryCustomerRepo) List(_ context.Context, lawyerID *uuid.UUID) ([]*models.Customer, error) {
	var out []*models.Customer
	for _, customer := range r.customers {
		if lawyerID != nil && customer.LawyerID != *lawyerID {
			continue
		}
		clone := *customer
		clone.OpenMattersCount = r.openMatters[customer.ID]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryCustomerRepo) CountOpenMatters(_ context.Context, customerID uuid.UUID) (int, error) {
	return r.openMatters[customerID], nil
}

func (r *memoryCustomerRepo) Update(_ context.Context, customer *models.Customer) (bool, error) {
	existing, ok := r.customers[customer.ID]
	if !ok || existing.Version != customer.Version {
		return false, nil
	}
	customer.Version++
	customer.UpdatedAt = time.Now().UTC()
	clone := *customer
	r.customers[customer.ID] = &clone
	return true, nil
}

func (r *memoryCustomerRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.customers[id]; !ok {
		return false, nil
	}
	delete(r.customers, id)

	if r.matters != nil {
		for matterID, matter := range r.matters.matters {
			if matter.CustomerID != id {
				continue
			}
			delete(r.matters.matters, matterID)
			if r.documents != nil {
				for docID, doc := range r.documents.documents {
					if doc.MatterID == matterID {
						delete(r.documents.documents, docID)
					}
				}
			}
		}
	}

	return true, nil
}

// bumpVersion simulates a concurrent writer touching the stored row.
func (r *memoryCustomerRepo) bumpVersion(id uuid.UUID) {
	if customer, ok := r.customers[id]; ok {
		customer.Version++
	}
}

type memoryMatterRepo struct {
	matters map[uuid.UUID]*models.Matter
}

func newMemoryMatterRepo() *memoryMatterRepo {
	return &memoryMatterRepo{matters: make(map[uuid.UUID]*models.Matter)}
}

func (r *memoryMatterRepo) Create(_ context.Context, matter *models.Matter) error {
	if matter.ID == uuid.Nil {
		matter.ID = uuid.New()
	}
	now := time.Now().UTC()
	matter.CreatedAt = now
	matter.UpdatedAt = now
	clone := *matter
	r.matters[matter.ID] = &clone
	return nil
}

func (r *memoryMatterRepo) GetByID(_ context.Context, customerID, matterID uuid.UUID) (*models.Matter, error) {
	matter, ok := r.matters[matterID]
	if !ok || matter.CustomerID != customerID {
		return nil, nil
	}
	clone := *matter
	return &clone, nil
}

func (r *memoryMatterRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*models.Matter, error) {
	var out []*models.Matter
	for _, matter := range r.matters {
		if matter.CustomerID == customerID {
			clone := *matter
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memoryMatterRepo) Update(_ context.Context, matter *models.Matter) (bool, error) {
	existing, ok := r.matters[matter.ID]
	if !ok || existing.Version != matter.Version {
		return false, nil
	}
	matter.Version++
	matter.UpdatedAt = time.Now().UTC()
	clone := *matter
	r.matters[matter.ID] = &clone
	return true, nil
}

func (r *memoryMatterRepo) Exists(_ context.Context, matterID uuid.UUID) (bool, error) {
	_, ok := r.matters[matterID]
	return ok, nil
}

func (r *memoryMatterRepo) bumpVersion(id uuid.UUID) {
	if matter, ok := r.matters[id]; ok {
		matter.Version++
	}
}

func (r *memoryMatterRepo) remove(id uuid.UUID) {
	delete(r.matters, id)
}

type memoryDocumentRepo struct {
	documents map[uuid.UUID]*models.Document
}

func newMemoryDocumentRepo() *memoryDocumentRepo {
	return &memoryDocumentRepo{documents: make(map[uuid.UUID]*models.Document)}
}

func (r *memoryDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	doc.CreatedAt = time.Now().UTC()
	clone := *doc
	r.documents[doc.ID] = &clone
	return nil
}

func (r *memoryDocumentRepo) GetByID(_ context.Context, matterID, documentID uuid.UUID) (*models.Document, error) {
	doc, ok := r.documents[documentID]
	if !ok || doc.MatterID != matterID {
		return nil, nil
	}
	clone := *doc
	return &clone, nil
}

func (r *memoryDocumentRepo) ListByMatter(_ context.Context, matterID uuid.UUID) ([]*models.Document, error) {
	var out []*models.Document
	for _, doc := range r.documents {
		if doc.MatterID == matterID {
			clone := *doc
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memoryDocumentRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.documents[id]; !ok {
		return false, nil
	}
	delete(r.documents, id)
	return true, nil
}
