package handlers

import (
	"context"
	"io"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
	"fincontrol/internal/services"
)

// --- mock services ---

type mockTransactionService struct {
	createFn func(input services.TransactionInput) (*models.Transaction, error)
	updateFn func(id string, input services.TransactionInput) (*models.Transaction, error)
	deleteFn func(id string, confirmed bool) error
	getFn    func(id string) (*models.Transaction, error)
	listFn   func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

func (m *mockTransactionService) CreateTransaction(input services.TransactionInput) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, input services.TransactionInput) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(id, input)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string, confirmed bool) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, confirmed)
	}
	return nil
}

func (m *mockTransactionService) GetTransaction(id string) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(filter, page)
	}
	resp := pagination.Slice([]models.Transaction{}, page)
	return &resp, nil
}

type mockGoalService struct {
	createFn func(input services.GoalInput) (*models.GoalView, error)
	updateFn func(id string, input services.GoalInput) (*models.GoalView, error)
	deleteFn func(id string, confirmed bool) error
	getFn    func(id string) (*models.GoalView, error)
	listFn   func() ([]models.GoalView, error)
}

func (m *mockGoalService) CreateGoal(input services.GoalInput) (*models.GoalView, error) {
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.GoalView{}, nil
}

func (m *mockGoalService) UpdateGoal(id string, input services.GoalInput) (*models.GoalView, error) {
	if m.updateFn != nil {
		return m.updateFn(id, input)
	}
	return &models.GoalView{}, nil
}

func (m *mockGoalService) DeleteGoal(id string, confirmed bool) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, confirmed)
	}
	return nil
}

func (m *mockGoalService) GetGoal(id string) (*models.GoalView, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, apperrors.ErrGoalNotFound
}

func (m *mockGoalService) ListGoals() ([]models.GoalView, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.GoalView{}, nil
}

type mockDashboardService struct {
	getFn func(year, month int) (*services.Dashboard, error)
}

func (m *mockDashboardService) GetDashboard(year, month int) (*services.Dashboard, error) {
	if m.getFn != nil {
		return m.getFn(year, month)
	}
	return &services.Dashboard{}, nil
}

func (m *mockDashboardService) CurrentPeriod() services.Period {
	return services.Period{Year: 2024, Month: 5}
}

type mockReportService struct {
	buildFn func(start, end string) (*services.Report, error)
	csvFn   func(start, end string, w io.Writer) (string, error)
	pdfFn   func(start, end string, w io.Writer) (string, error)
}

func (m *mockReportService) BuildReport(start, end string) (*services.Report, error) {
	if m.buildFn != nil {
		return m.buildFn(start, end)
	}
	return &services.Report{StartDate: start, EndDate: end}, nil
}

func (m *mockReportService) ExportCSV(start, end string, w io.Writer) (string, error) {
	if m.csvFn != nil {
		return m.csvFn(start, end, w)
	}
	return "report.csv", nil
}

func (m *mockReportService) ExportPDF(start, end string, w io.Writer) (string, error) {
	if m.pdfFn != nil {
		return m.pdfFn(start, end, w)
	}
	return "report.pdf", nil
}

type mockBackupService struct {
	exportFn func() (*models.Backup, error)
	importFn func(r io.Reader) (*services.ImportResult, error)
}

func (m *mockBackupService) Export() (*models.Backup, error) {
	if m.exportFn != nil {
		return m.exportFn()
	}
	return &models.Backup{Version: models.BackupVersion}, nil
}

func (m *mockBackupService) Import(r io.Reader) (*services.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(r)
	}
	return &services.ImportResult{}, nil
}

type mockAdvisorService struct {
	analyzeFn func(ctx context.Context, year, month int) (string, error)
	receiptFn func(ctx context.Context, payload []byte, mimeType string) (*services.ReceiptDraft, error)
}

func (m *mockAdvisorService) Analyze(ctx context.Context, year, month int) (string, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, year, month)
	}
	return "", nil
}

func (m *mockAdvisorService) ExtractReceipt(ctx context.Context, payload []byte, mimeType string) (*services.ReceiptDraft, error) {
	if m.receiptFn != nil {
		return m.receiptFn(ctx, payload, mimeType)
	}
	return &services.ReceiptDraft{}, nil
}
