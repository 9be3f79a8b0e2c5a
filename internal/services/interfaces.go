package services

import (
	"context"
	"io"

	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
)

// TransactionInput carries the editable fields of a transaction.
type TransactionInput struct {
	Description string
	Amount      float64
	Date        string
	Type        models.TransactionType
	Category    models.Category
	DocumentURL string
	GoalID      string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Type      *models.TransactionType
	Category  *models.Category
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(id string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string, confirmed bool) error
	GetTransaction(id string) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// GoalInput carries the editable fields of a goal.
type GoalInput struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      string
	Notes         string
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(input GoalInput) (*models.GoalView, error)
	UpdateGoal(id string, input GoalInput) (*models.GoalView, error)
	DeleteGoal(id string, confirmed bool) error
	GetGoal(id string) (*models.GoalView, error)
	ListGoals() ([]models.GoalView, error)
}

// Period identifies a calendar month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Dashboard is everything the overview screen shows for one month.
type Dashboard struct {
	Period            Period                 `json:"period"`
	Label             string                 `json:"label"`
	PrevMonth         Period                 `json:"prevMonth"`
	NextMonth         Period                 `json:"nextMonth"`
	Summary           models.Summary         `json:"summary"`
	ExpenseByCategory []models.CategoryTotal `json:"expenseByCategory"`
	ExpenseByType     []models.TypeTotal     `json:"expenseByType"`
	History           []models.MonthBucket   `json:"history"`
	Goals             []models.GoalView      `json:"goals"`
	Transactions      []models.Transaction   `json:"transactions"`
}

// DashboardServicer defines the contract for the monthly overview.
type DashboardServicer interface {
	GetDashboard(year, month int) (*Dashboard, error)
	CurrentPeriod() Period
}

// Report is the date-range view used by the reports screen and exports.
type Report struct {
	StartDate         string                 `json:"startDate"`
	EndDate           string                 `json:"endDate"`
	Summary           models.Summary         `json:"summary"`
	ExpenseByCategory []models.CategoryTotal `json:"expenseByCategory"`
	Transactions      []models.Transaction   `json:"transactions"`
}

// ReportServicer defines the contract for reports and their exports.
type ReportServicer interface {
	BuildReport(start, end string) (*Report, error)
	ExportCSV(start, end string, w io.Writer) (string, error)
	ExportPDF(start, end string, w io.Writer) (string, error)
}

// ImportResult reports which collections a backup replaced.
type ImportResult struct {
	TransactionsRestored bool `json:"transactionsRestored"`
	GoalsRestored        bool `json:"goalsRestored"`
	TransactionCount     int  `json:"transactionCount"`
	GoalCount            int  `json:"goalCount"`
}

// BackupServicer defines the contract for full-state export and import.
type BackupServicer interface {
	Export() (*models.Backup, error)
	Import(r io.Reader) (*ImportResult, error)
}

// ReceiptDraft is a transaction pre-filled from a receipt.
type ReceiptDraft struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Category    models.Category `json:"category"`
}

// AdvisorServicer defines the contract for the AI features.
type AdvisorServicer interface {
	Analyze(ctx context.Context, year, month int) (string, error)
	ExtractReceipt(ctx context.Context, payload []byte, mimeType string) (*ReceiptDraft, error)
}
