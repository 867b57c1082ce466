package store

import (
	"time"

	"github.com/evertonab28/finance/internal/models"
)

// SeedDemoData loads the demonstration categories and transactions into an
// empty store. Root categories are created first so that the subcategory
// parent ids resolve against the sequential counter.
func (s *Store) SeedDemoData() {
	salario := s.CreateCategory(demoCategory("Salário", models.CategoryTypeReceita, nil, "#22c55e", "banknote"))
	s.CreateCategory(demoCategory("Freelance", models.CategoryTypeReceita, nil, "#16a34a", "laptop"))
	s.CreateCategory(demoCategory("Investimentos", models.CategoryTypeReceita, nil, "#15803d", "trendingUp"))

	moradia := s.CreateCategory(demoCategory("Moradia", models.CategoryTypeDespesa, nil, "#ef4444", "home"))
	alimentacao := s.CreateCategory(demoCategory("Alimentação", models.CategoryTypeDespesa, nil, "#f97316", "utensils"))
	transporte := s.CreateCategory(demoCategory("Transporte", models.CategoryTypeDespesa, nil, "#eab308", "car"))
	entretenimento := s.CreateCategory(demoCategory("Entretenimento", models.CategoryTypeDespesa, nil, "#a855f7", "gamepad2"))
	s.CreateCategory(demoCategory("Saúde", models.CategoryTypeDespesa, nil, "#06b6d4", "heart"))

	aluguel := s.CreateCategory(demoCategory("Aluguel", models.CategoryTypeDespesa, &moradia.ID, "#dc2626", "key"))
	s.CreateCategory(demoCategory("Condomínio", models.CategoryTypeDespesa, &moradia.ID, "#b91c1c", "building"))
	s.CreateCategory(demoCategory("IPTU", models.CategoryTypeDespesa, &moradia.ID, "#991b1b", "fileText"))

	supermercado := s.CreateCategory(demoCategory("Supermercado", models.CategoryTypeDespesa, &alimentacao.ID, "#ea580c", "shoppingCart"))
	s.CreateCategory(demoCategory("Restaurante", models.CategoryTypeDespesa, &alimentacao.ID, "#c2410c", "chefHat"))
	s.CreateCategory(demoCategory("Delivery", models.CategoryTypeDespesa, &alimentacao.ID, "#9a3412", "bike"))

	s.CreateTransaction(models.Transaction{
		Type:          models.TransactionTypeReceita,
		Amount:        "4500.00",
		CategoryID:    salario.ID,
		Description:   "Salário Dezembro",
		PaymentMethod: "Transferência",
		Date:          time.Date(2024, time.December, 14, 9, 0, 0, 0, time.Local),
	})
	s.CreateTransaction(models.Transaction{
		Type:          models.TransactionTypeDespesa,
		Amount:        "187.50",
		CategoryID:    supermercado.ID,
		Description:   "Supermercado Extra",
		PaymentMethod: "Cartão de Débito",
		Date:          time.Date(2024, time.December, 15, 14, 30, 0, 0, time.Local),
	})
	s.CreateTransaction(models.Transaction{
		Type:          models.TransactionTypeDespesa,
		Amount:        "98.40",
		CategoryID:    transporte.ID,
		Description:   "Posto Shell",
		PaymentMethod: "PIX",
		Date:          time.Date(2024, time.December, 13, 16, 20, 0, 0, time.Local),
	})
	s.CreateTransaction(models.Transaction{
		Type:          models.TransactionTypeDespesa,
		Amount:        "1200.00",
		CategoryID:    aluguel.ID,
		Description:   "Aluguel Apartamento",
		PaymentMethod: "Transferência",
		Date:          time.Date(2024, time.December, 12, 10, 0, 0, 0, time.Local),
	})
	s.CreateTransaction(models.Transaction{
		Type:          models.TransactionTypeDespesa,
		Amount:        "45.00",
		CategoryID:    entretenimento.ID,
		Description:   "Cinema Cinemark",
		PaymentMethod: "Cartão de Crédito",
		Date:          time.Date(2024, time.December, 10, 19, 30, 0, 0, time.Local),
	})
}

func demoCategory(name string, categoryType models.CategoryType, parentID *int, color, icon string) models.Category {
	return models.Category{
		Name:     name,
		Type:     categoryType,
		ParentID: parentID,
		Color:    color,
		Icon:     icon,
		IsActive: "true",
	}
}
