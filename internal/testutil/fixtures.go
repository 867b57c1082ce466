package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestStore creates an empty store for a test.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New()
}

// CreateTestCategory creates an active root category of the given type with
// a unique name.
func CreateTestCategory(t *testing.T, s *store.Store, categoryType models.CategoryType) models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, s, fmt.Sprintf("Categoria %d", nextID()), categoryType)
}

// CreateTestCategoryWithName creates an active root category with the given name.
func CreateTestCategoryWithName(t *testing.T, s *store.Store, name string, categoryType models.CategoryType) models.Category {
	t.Helper()

	return s.CreateCategory(models.Category{
		Name:     name,
		Type:     categoryType,
		Color:    "#6366f1",
		Icon:     "tag",
		IsActive: "true",
	})
}

// CreateTestSubcategory creates an active subcategory under the given parent.
func CreateTestSubcategory(t *testing.T, s *store.Store, parentID int, categoryType models.CategoryType) models.Category {
	t.Helper()

	return s.CreateCategory(models.Category{
		Name:     fmt.Sprintf("Subcategoria %d", nextID()),
		Type:     categoryType,
		ParentID: &parentID,
		Color:    "#6366f1",
		Icon:     "tag",
		IsActive: "true",
	})
}

// CreateTestTransaction creates a transaction with the given type, amount
// string, and date, referencing categoryID.
func CreateTestTransaction(t *testing.T, s *store.Store, transactionType models.TransactionType, amount string, categoryID int, date time.Time) models.Transaction {
	t.Helper()

	return s.CreateTransaction(models.Transaction{
		Type:        transactionType,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Lançamento %d", nextID()),
		Date:        date,
	})
}
