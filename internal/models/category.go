package models

import "strings"

// Category is a label from the fixed transaction taxonomy.
type Category string

// Broad categories.
const (
	CategoryHousing            Category = "Moradia/Habitação"
	CategoryFood               Category = "Alimentação"
	CategoryHealth             Category = "Saúde"
	CategoryTransport          Category = "Transporte"
	CategoryEducation          Category = "Educação"
	CategoryPersonalLeisure    Category = "Despesas Pessoais e Lazer"
	CategoryDebtsFinancial     Category = "Dívidas e Serviços Financeiros"
	CategoryInvestmentsSavings Category = "Investimentos/Poupança"
	CategoryUncategorized      Category = "Não Categorizado"
	CategoryIncomeSource       Category = "Fonte de Renda"
)

// Detailed variable expenses.
const (
	CategorySupermarket      Category = "Compras de supermercado"
	CategoryEatingOut        Category = "Refeições fora de casa"
	CategoryCinema           Category = "Cinema"
	CategoryRestaurants      Category = "Restaurantes"
	CategoryRecreational     Category = "Atividades recreativas"
	CategoryClothingFootwear Category = "Compras de roupas e calçados"
	CategoryFoodDelivery     Category = "Entrega de comida ao domicílio"
	CategoryFuel             Category = "Combustível"
	CategoryPublicTransport  Category = "Transporte público"
	CategoryVehicleUpkeep    Category = "Manutenção do veículo"
	CategoryGifts            Category = "Presentes"
)

// Detailed fixed expenses.
const (
	CategoryRentHomeLoan    Category = "Aluguel ou prestação da casa"
	CategoryCondominiumFee  Category = "Condomínio"
	CategoryUtilities       Category = "Contas de água, luz e gás"
	CategoryInternetPhone   Category = "Internet e telefone"
	CategoryLoanPayments    Category = "Pagamentos de empréstimos"
	CategoryStreaming       Category = "Assinaturas de sites de streaming ou canais pagos"
	CategoryHomeCarInsure   Category = "Seguro residencial ou do carro"
	CategoryClubMemberships Category = "Clubes e taxas de adesão"
	CategorySchoolFees      Category = "Mensalidade de escolas ou faculdades"
)

// Categories is the full taxonomy in declaration order.
var Categories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryHealth,
	CategoryTransport,
	CategoryEducation,
	CategoryPersonalLeisure,
	CategoryDebtsFinancial,
	CategoryInvestmentsSavings,
	CategoryUncategorized,
	CategoryIncomeSource,
	CategorySupermarket,
	CategoryEatingOut,
	CategoryCinema,
	CategoryRestaurants,
	CategoryRecreational,
	CategoryClothingFootwear,
	CategoryFoodDelivery,
	CategoryFuel,
	CategoryPublicTransport,
	CategoryVehicleUpkeep,
	CategoryGifts,
	CategoryRentHomeLoan,
	CategoryCondominiumFee,
	CategoryUtilities,
	CategoryInternetPhone,
	CategoryLoanPayments,
	CategoryStreaming,
	CategoryHomeCarInsure,
	CategoryClubMemberships,
	CategorySchoolFees,
}

// CategoriesFor returns the categories a transaction of type t may use.
// Income only takes an income source or no category; every other type
// takes the full list except the income source.
func CategoriesFor(t TransactionType) []Category {
	if t == TransactionTypeIncome {
		return []Category{CategoryIncomeSource, CategoryUncategorized}
	}
	out := make([]Category, 0, len(Categories)-1)
	for _, c := range Categories {
		if c != CategoryIncomeSource {
			out = append(out, c)
		}
	}
	return out
}

// DefaultCategory returns the category preselected for type t.
func DefaultCategory(t TransactionType) Category {
	switch t {
	case TransactionTypeIncome:
		return CategoryIncomeSource
	case TransactionTypeInvestment:
		return CategoryInvestmentsSavings
	default:
		return CategoryUncategorized
	}
}

// AllowsCategory reports whether c belongs to the partition for t.
func AllowsCategory(t TransactionType, c Category) bool {
	for _, allowed := range CategoriesFor(t) {
		if allowed == c {
			return true
		}
	}
	return false
}

// MatchCategory maps free text onto the taxonomy: an exact label first,
// then the first label whose lowercase form contains the lowercased text.
// ok is false when nothing matches.
func MatchCategory(text string) (Category, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	for _, c := range Categories {
		if string(c) == text {
			return c, true
		}
	}
	needle := strings.ToLower(text)
	for _, c := range Categories {
		if strings.Contains(strings.ToLower(string(c)), needle) {
			return c, true
		}
	}
	return "", false
}
