package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"fincontrol/internal/models"
)

// promptTransaction is the reduced form of a transaction sent to the model.
type promptTransaction struct {
	Desc string                 `json:"desc"`
	Val  float64                `json:"val"`
	Cat  models.Category        `json:"cat"`
	Type models.TransactionType `json:"type"`
	Date string                 `json:"date"`
}

type promptData struct {
	Summary      models.Summary      `json:"summary"`
	Transactions []promptTransaction `json:"transactions"`
}

const advicePrompt = `Você é um consultor financeiro pessoal especializado em finanças domésticas brasileiras.
Analise o seguinte resumo financeiro e lista de transações do mês atual.

Dados:
%s

Por favor, forneça uma análise curta, amigável e direta em formato MARKDOWN (use negrito, listas).
Estrutura da resposta:
1. 📊 **Panorama Rápido**: Um comentário sobre o saldo líquido e a saúde financeira.
2. ⚠️ **Pontos de Atenção**: Identifique categorias onde o gasto parece excessivo (se houver).
3. 💡 **Dica de Ouro**: Uma sugestão prática e acionável para economizar com base nesses dados específicos.

Se não houver transações, dê apenas uma dica genérica de economia.
`

const receiptPrompt = `Analise esta imagem de comprovante/recibo financeiro.
Extraia os dados para preencher um formulário.
Retorne APENAS um JSON com os seguintes campos:
- description: Uma descrição curta do gasto (Nome do estabelecimento ou produto principal).
- amount: O valor total (número float).
- date: A data da transação no formato YYYY-MM-DD. Se não encontrar o ano, assuma o ano atual.
- category: A categoria que melhor se encaixa na lista abaixo. Se não tiver certeza, use "%s".

Lista de Categorias Permitidas:
%s
`

func buildAdvicePrompt(req AdviceRequest) (string, error) {
	data := promptData{
		Summary:      req.Summary,
		Transactions: make([]promptTransaction, 0, len(req.Transactions)),
	}
	for _, t := range req.Transactions {
		data.Transactions = append(data.Transactions, promptTransaction{
			Desc: t.Description,
			Val:  t.Amount,
			Cat:  t.Category,
			Type: t.Type,
			Date: t.Date,
		})
	}

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("advisor: encode prompt data: %w", err)
	}
	return fmt.Sprintf(advicePrompt, body), nil
}

func buildReceiptPrompt() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return fmt.Sprintf(receiptPrompt, models.CategoryUncategorized, strings.Join(names, ", "))
}
