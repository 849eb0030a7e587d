package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mywallet/mywallet/internal/category"
	"github.com/mywallet/mywallet/internal/transaction"
)

func TestNames_TopLevelOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	repo.EXPECT().
		ListCategories(gomock.Any(), transaction.TypeExpense).
		Return([]*category.Category{
			{Name: "Транспорт", Type: transaction.TypeExpense},
			{Name: "Такси", Type: transaction.TypeExpense, Parent: "Транспорт"},
			{Name: "Дом", Type: transaction.TypeExpense},
		}, nil)

	names, err := service.Names(context.Background(), transaction.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, []string{"Транспорт", "Дом"}, names)
}

func TestSubcategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	repo.EXPECT().
		ListCategories(gomock.Any(), transaction.TypeExpense).
		Return([]*category.Category{
			{Name: "Транспорт", Type: transaction.TypeExpense},
			{Name: "Такси", Type: transaction.TypeExpense, Parent: "Транспорт"},
			{Name: "Бензин", Type: transaction.TypeExpense, Parent: "Транспорт"},
			{Name: "Кафе", Type: transaction.TypeExpense, Parent: "Еда и напитки"},
		}, nil)

	children, err := service.Subcategories(context.Background(), transaction.TypeExpense, "Транспорт")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Такси", children[0].Name)
	assert.Equal(t, "Бензин", children[1].Name)
}

func TestCreate_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	err := service.Create(context.Background(), &category.Category{Name: "   ", Type: transaction.TypeExpense})
	assert.ErrorIs(t, err, category.ErrEmptyName)

	err = service.Create(context.Background(), &category.Category{Name: "Спорт", Type: "savings"})
	assert.ErrorIs(t, err, category.ErrInvalidType)
}

func TestCreate_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *category.Category) error {
			assert.Equal(t, "Спорт", c.Name)
			return nil
		})

	err := service.Create(context.Background(), &category.Category{Name: "  Спорт  ", Type: transaction.TypeExpense})
	require.NoError(t, err)
}

func TestList_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	_, err := service.List(context.Background(), "savings")
	assert.ErrorIs(t, err, category.ErrInvalidType)
}

func TestSeed_SkipsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	service := category.NewService(repo)

	total := len(category.Defaults())

	var calls int
	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		Times(total).
		DoAndReturn(func(_ context.Context, _ *category.Category) error {
			calls++
			if calls%2 == 0 {
				return category.ErrDuplicate
			}
			return nil
		})

	inserted, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, total-total/2, inserted)
}

func TestDefaults(t *testing.T) {
	defaults := category.Defaults()

	byName := make(map[string]*category.Category)
	for _, c := range defaults {
		byName[c.Name+"/"+string(c.Type)] = c
	}

	// The reserved categories the services depend on must be seeded.
	require.Contains(t, byName, transaction.CategoryTransfers+"/expense")
	require.Contains(t, byName, transaction.CategoryOther+"/expense")
	require.Contains(t, byName, transaction.CategoryOther+"/income")
	require.Contains(t, byName, transaction.CategoryPartners+"/expense")

	// Every parent reference resolves to a seeded top-level category.
	for _, c := range defaults {
		if c.Parent == "" {
			continue
		}

		parent, ok := byName[c.Parent+"/"+string(c.Type)]
		require.True(t, ok, "missing parent %q", c.Parent)
		assert.Empty(t, parent.Parent)
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "🚕 Такси", category.Category{Name: "Такси", Emoji: "🚕"}.Display())
	assert.Equal(t, "Такси", category.Category{Name: "Такси"}.Display())
}
