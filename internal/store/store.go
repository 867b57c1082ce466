// Package store implements the in-memory storage engine: two id-keyed maps
// holding transactions and categories, with CRUD, a referential-integrity
// guard on category deletion, and the aggregation queries backing the
// analytics endpoints.
//
// A Store must be constructed with New and passed to its consumers; there
// is no package-level instance. All methods are safe for concurrent use.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/evertonab28/finance/internal/models"
)

// Deletion guard results. DeleteCategory reports which condition blocked
// the delete instead of collapsing them into a single failure value.
var (
	ErrNotFound            = errors.New("record not found")
	ErrCategoryInUse       = errors.New("category is referenced by transactions")
	ErrCategoryHasChildren = errors.New("category is the parent of other categories")
)

// Store holds all records in memory. Ids are assigned from monotonic
// counters seeded at 1 and are never reused.
type Store struct {
	mu              sync.RWMutex
	transactions    map[int]models.Transaction
	categories      map[int]models.Category
	nextTransaction int
	nextCategory    int

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		transactions:    make(map[int]models.Transaction),
		categories:      make(map[int]models.Category),
		nextTransaction: 1,
		nextCategory:    1,
		now:             time.Now,
	}
}

// CreateTransaction assigns the next id, stamps CreatedAt, and stores the
// transaction. Any id or creation time on the input is ignored.
func (s *Store) CreateTransaction(t models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextTransaction
	s.nextTransaction++
	t.CreatedAt = s.now()
	s.transactions[t.ID] = t
	return t
}

// GetTransactionByID returns the transaction with the given id.
func (s *Store) GetTransactionByID(id int) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	return t, ok
}

// GetTransactions returns all transactions sorted by business date,
// newest first. Transactions sharing a date keep insertion order.
func (s *Store) GetTransactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedTransactions()
}

// GetTransactionsByDateRange returns transactions whose date falls within
// [start, end], inclusive on both ends, newest first.
func (s *Store) GetTransactionsByDateRange(start, end time.Time) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Transaction
	for _, t := range s.sortedTransactions() {
		if !t.Date.Before(start) && !t.Date.After(end) {
			result = append(result, t)
		}
	}
	return result
}

// UpdateTransaction merges the non-nil patch fields into the stored
// transaction. Id and CreatedAt are never touched. The second return
// value reports whether the id existed.
func (s *Store) UpdateTransaction(id int, patch models.TransactionPatch) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, false
	}

	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.CategoryID != nil {
		t.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.PaymentMethod != nil {
		t.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}

	s.transactions[id] = t
	return t, true
}

// DeleteTransaction removes the transaction unconditionally and reports
// whether it existed.
func (s *Store) DeleteTransaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return false
	}
	delete(s.transactions, id)
	return true
}

// CreateCategory assigns the next id, stamps CreatedAt, and stores the
// category.
func (s *Store) CreateCategory(c models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCategory
	s.nextCategory++
	c.CreatedAt = s.now()
	s.categories[c.ID] = c
	return c
}

// GetCategoryByID returns the category with the given id.
func (s *Store) GetCategoryByID(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	return c, ok
}

// GetCategories returns all categories sorted ascending by name using
// Brazilian Portuguese collation.
func (s *Store) GetCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, c)
	}
	sortCategoriesByName(result)
	return result
}

// GetCategoriesByType returns the active categories of the given type,
// sorted ascending by name.
func (s *Store) GetCategoriesByType(categoryType models.CategoryType) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Category
	for _, c := range s.categories {
		if c.Type == categoryType && c.IsActive == "true" {
			result = append(result, c)
		}
	}
	sortCategoriesByName(result)
	return result
}

// UpdateCategory merges the non-nil patch fields into the stored
// category. Id and CreatedAt are never touched.
func (s *Store) UpdateCategory(id int, patch models.CategoryPatch) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, false
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.ParentID != nil {
		c.ParentID = patch.ParentID
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}

	s.categories[id] = c
	return c, true
}

// DeleteCategory removes the category unless it is referenced by a
// transaction or is the parent of another category. The store is left
// unchanged when the guard trips.
func (s *Store) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}

	for _, t := range s.transactions {
		if t.CategoryID == id {
			return ErrCategoryInUse
		}
	}
	for _, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return ErrCategoryHasChildren
		}
	}

	delete(s.categories, id)
	return nil
}

// sortedTransactions returns all transactions ordered by date descending,
// insertion (id) order for equal dates. Callers must hold at least a read
// lock.
func (s *Store) sortedTransactions() []models.Transaction {
	result := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		result = append(result, t)
	}
	// Map iteration order is random; restore insertion order first so the
	// stable sort preserves it for equal dates.
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result
}

func sortCategoriesByName(categories []models.Category) {
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(categories, func(i, j int) bool {
		return col.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}
