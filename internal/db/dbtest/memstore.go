// Package dbtest provides an in-memory stand-in for the MySQL store, used by
// handler and router tests. It mirrors the store's observable behavior,
// including the cascade from businesses to reviews.
package dbtest

import (
	"context"
	"sort"
	"sync"

	"github.com/Jeomhps/business-reviews/internal/db"
)

type Mem struct {
	mu         sync.Mutex
	businesses map[int64]db.Business
	reviews    map[int64]db.Review
	nextBiz    int64
	nextRev    int64

	// Err, when set, is returned by every call.
	Err error
}

func NewMem() *Mem {
	return &Mem{businesses: map[int64]db.Business{}, reviews: map[int64]db.Review{}}
}

func (m *Mem) PingContext(context.Context) error { return m.Err }

func (m *Mem) CreateBusiness(_ context.Context, b db.Business) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextBiz++
	b.ID = m.nextBiz
	m.businesses[b.ID] = b
	return b.ID, nil
}

func (m *Mem) GetBusiness(_ context.Context, id int64) (db.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return db.Business{}, m.Err
	}
	b, ok := m.businesses[id]
	if !ok {
		return db.Business{}, db.ErrBusinessNotFound
	}
	return b, nil
}

func (m *Mem) ListBusinesses(_ context.Context, limit, offset int) ([]db.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.sortedBusinesses(func(db.Business) bool { return true })
	if offset >= len(all) {
		return []db.Business{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *Mem) ListBusinessesByOwner(_ context.Context, ownerID int64) ([]db.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sortedBusinesses(func(b db.Business) bool { return b.OwnerID == ownerID }), nil
}

func (m *Mem) UpdateBusiness(_ context.Context, b db.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.businesses[b.ID]; !ok {
		return db.ErrBusinessNotFound
	}
	m.businesses[b.ID] = b
	return nil
}

func (m *Mem) DeleteBusiness(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.businesses[id]; !ok {
		return false, nil
	}
	delete(m.businesses, id)
	for rid, r := range m.reviews {
		if r.BusinessID == id {
			delete(m.reviews, rid)
		}
	}
	return true, nil
}

func (m *Mem) CreateReview(_ context.Context, r db.Review) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if _, ok := m.businesses[r.BusinessID]; !ok {
		return 0, db.ErrBusinessNotFound
	}
	for _, x := range m.reviews {
		if x.BusinessID == r.BusinessID && x.UserID == r.UserID {
			return 0, db.ErrReviewExists
		}
	}
	m.nextRev++
	r.ID = m.nextRev
	m.reviews[r.ID] = r
	return r.ID, nil
}

func (m *Mem) GetReview(_ context.Context, id int64) (db.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return db.Review{}, m.Err
	}
	r, ok := m.reviews[id]
	if !ok {
		return db.Review{}, db.ErrReviewNotFound
	}
	return r, nil
}

func (m *Mem) UpdateReview(_ context.Context, id int64, u db.ReviewUpdate) (db.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return db.Review{}, m.Err
	}
	r, ok := m.reviews[id]
	if !ok {
		return db.Review{}, db.ErrReviewNotFound
	}
	r.Stars = u.Stars
	if u.SetText {
		r.ReviewText = u.ReviewText
	}
	m.reviews[id] = r
	return r, nil
}

func (m *Mem) DeleteReview(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.reviews[id]; !ok {
		return false, nil
	}
	delete(m.reviews, id)
	return true, nil
}

func (m *Mem) ListReviewsByUser(_ context.Context, userID int64) ([]db.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []db.Review{}
	for _, r := range m.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ReviewCount returns how many stored reviews match the pair.
func (m *Mem) ReviewCount(businessID, userID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.reviews {
		if r.BusinessID == businessID && r.UserID == userID {
			n++
		}
	}
	return n
}

func (m *Mem) sortedBusinesses(keep func(db.Business) bool) []db.Business {
	out := []db.Business{}
	for _, b := range m.businesses {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
