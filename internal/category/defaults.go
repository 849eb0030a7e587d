package category

import "github.com/mywallet/mywallet/internal/transaction"

type seed struct {
	name   string
	parent string
	emoji  string
}

var defaultExpense = []seed{
	{name: "Еда и напитки", emoji: "🍔"},
	{name: "Рестораны", parent: "Еда и напитки", emoji: "🍽️"},
	{name: "Продукты", parent: "Еда и напитки", emoji: "🛒"},
	{name: "Кафе", parent: "Еда и напитки", emoji: "☕"},

	{name: "Транспорт", emoji: "🚗"},
	{name: "Такси", parent: "Транспорт", emoji: "🚕"},
	{name: "Общественный транспорт", parent: "Транспорт", emoji: "🚌"},
	{name: "Бензин", parent: "Транспорт", emoji: "⛽"},

	{name: "Здоровье", emoji: "🏥"},
	{name: "Аптеки", parent: "Здоровье", emoji: "💊"},
	{name: "Врачи", parent: "Здоровье", emoji: "👨‍⚕️"},
	{name: "Анализы", parent: "Здоровье", emoji: "🔬"},

	{name: "Дом", emoji: "🏠"},
	{name: "Коммунальные услуги", parent: "Дом", emoji: "💡"},
	{name: "Ремонт", parent: "Дом", emoji: "🔨"},
	{name: "Мебель", parent: "Дом", emoji: "🛋️"},

	{name: "Работа/Бизнес", emoji: "💼"},
	{name: "Материалы", parent: "Работа/Бизнес", emoji: "📦"},
	{name: "Инструменты", parent: "Работа/Бизнес", emoji: "🔧"},
	{name: transaction.CategoryPartners, parent: "Работа/Бизнес", emoji: "🤝"},

	{name: "Образование", emoji: "📚"},
	{name: "Курсы", parent: "Образование", emoji: "🎓"},
	{name: "Книги", parent: "Образование", emoji: "📖"},

	{name: "Развлечения", emoji: "🎮"},
	{name: "Одежда", emoji: "👕"},
	{name: "Подарки", emoji: "🎁"},
	{name: transaction.CategoryTransfers, emoji: "💸"},
	{name: transaction.CategoryOther, emoji: "📌"},
}

var defaultIncome = []seed{
	{name: "Зарплата", emoji: "💰"},
	{name: "Проекты", emoji: "💼"},
	{name: "3D модели", parent: "Проекты", emoji: "🎨"},
	{name: "AI агенты", parent: "Проекты", emoji: "🤖"},
	{name: "Фриланс", parent: "Проекты", emoji: "💻"},
	{name: "Подарки", emoji: "🎁"},
	{name: "Инвестиции", emoji: "📈"},
	{name: transaction.CategoryOther, emoji: "📌"},
}

// Defaults returns the built-in catalogue a fresh database is seeded with.
func Defaults() []*Category {
	categories := make([]*Category, 0, len(defaultExpense)+len(defaultIncome))

	for _, s := range defaultExpense {
		categories = append(categories, &Category{
			Name:   s.name,
			Type:   transaction.TypeExpense,
			Parent: s.parent,
			Emoji:  s.emoji,
		})
	}

	for _, s := range defaultIncome {
		categories = append(categories, &Category{
			Name:   s.name,
			Type:   transaction.TypeIncome,
			Parent: s.parent,
			Emoji:  s.emoji,
		})
	}

	return categories
}
