package categorize_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mywallet/mywallet/internal/categorize"
	"github.com/mywallet/mywallet/internal/transaction"
)

var candidates = []string{"Продукты", "Транспорт", "Другое"}

func newService(t *testing.T) (*categorize.Service, *categorize.MockClassifier, *categorize.MockCatalogue) {
	t.Helper()

	ctrl := gomock.NewController(t)
	classifier := categorize.NewMockClassifier(ctrl)
	catalogue := categorize.NewMockCatalogue(ctrl)

	logger := slog.New(slog.DiscardHandler)

	return categorize.NewService(classifier, catalogue, nil, logger), classifier, catalogue
}

func newServiceWithMemory(t *testing.T) (*categorize.Service, *categorize.MockClassifier, *categorize.MockCatalogue, *categorize.MockMemory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	classifier := categorize.NewMockClassifier(ctrl)
	catalogue := categorize.NewMockCatalogue(ctrl)
	memory := categorize.NewMockMemory(ctrl)

	logger := slog.New(slog.DiscardHandler)

	return categorize.NewService(classifier, catalogue, memory, logger), classifier, catalogue, memory
}

func TestCategorize_ValidAnswer(t *testing.T) {
	service, classifier, catalogue := newService(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), "такси до дома", int64(15000), transaction.TypeExpense, candidates).
		Return("Транспорт", nil)

	got := service.Categorize(context.Background(), "такси до дома", 15000, transaction.TypeExpense)
	assert.Equal(t, "Транспорт", got)
}

func TestCategorize_AnswerOutsideCatalogue(t *testing.T) {
	service, classifier, catalogue := newService(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Криптовалюта", nil)

	got := service.Categorize(context.Background(), "bitcoin", 100, transaction.TypeExpense)
	assert.Equal(t, transaction.CategoryOther, got)
}

func TestCategorize_ClassifierError(t *testing.T) {
	service, classifier, catalogue := newService(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model timeout"))

	got := service.Categorize(context.Background(), "кофе", 100, transaction.TypeExpense)
	assert.Equal(t, transaction.CategoryOther, got)
}

func TestCategorize_EmptyCatalogue(t *testing.T) {
	service, _, catalogue := newService(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(nil, nil)

	got := service.Categorize(context.Background(), "кофе", 100, transaction.TypeExpense)
	assert.Equal(t, transaction.CategoryOther, got)
}

func TestCategorize_CatalogueError(t *testing.T) {
	service, _, catalogue := newService(t)

	catalogue.EXPECT().
		Names(gomock.Any(), transaction.TypeIncome).
		Return(nil, errors.New("connection refused"))

	got := service.Categorize(context.Background(), "зарплата", 100, transaction.TypeIncome)
	assert.Equal(t, transaction.CategoryOther, got)
}

func TestCategorize_MemoryHit(t *testing.T) {
	service, _, catalogue, memory := newServiceWithMemory(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	memory.EXPECT().Suggest(gomock.Any(), "укрзализныця киев-львов").Return("Транспорт", nil)

	got := service.Categorize(context.Background(), "укрзализныця киев-львов", 35000, transaction.TypeExpense)
	assert.Equal(t, "Транспорт", got)
}

func TestCategorize_MemoryMissFallsThrough(t *testing.T) {
	service, classifier, catalogue, memory := newServiceWithMemory(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	memory.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return("", nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Продукты", nil)

	got := service.Categorize(context.Background(), "сильпо", 42000, transaction.TypeExpense)
	assert.Equal(t, "Продукты", got)
}

func TestCategorize_StaleMemoryIgnored(t *testing.T) {
	service, classifier, catalogue, memory := newServiceWithMemory(t)

	// The remembered category was deleted from the catalogue since it was
	// learned; fall through to the classifier.
	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	memory.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return("Хобби", nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Другое", nil)

	got := service.Categorize(context.Background(), "гитарные струны", 8000, transaction.TypeExpense)
	assert.Equal(t, "Другое", got)
}

func TestConfirm(t *testing.T) {
	service, _, _, memory := newServiceWithMemory(t)

	memory.EXPECT().Learn(gomock.Any(), "сильпо", "Продукты").Return(nil)

	service.Confirm(context.Background(), "сильпо", "Продукты")
}

func TestConfirm_EmptyDescription(t *testing.T) {
	service, _, _, _ := newServiceWithMemory(t)

	service.Confirm(context.Background(), "", "Продукты")
}

func TestCategorize_TrimsAnswer(t *testing.T) {
	service, classifier, catalogue := newService(t)

	catalogue.EXPECT().Names(gomock.Any(), transaction.TypeExpense).Return(candidates, nil)
	classifier.EXPECT().
		Categorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(" Продукты\n", nil)

	got := service.Categorize(context.Background(), "ашан", 100, transaction.TypeExpense)
	assert.Equal(t, "Продукты", got)
}
