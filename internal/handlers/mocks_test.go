package handlers

import (
	"butce/internal/insights"
	"butce/internal/models"
	"butce/internal/money"
	"butce/internal/pagination"
	"butce/internal/services"
)

// --- mock user service ---

type mockUserService struct {
	registerFn     func(email, password string) (*models.User, error)
	authenticateFn func(email, password string) (*models.User, error)
	getUserByIDFn  func(id uint) (*models.User, error)
}

func (m *mockUserService) Register(email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(email, password)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email}, nil
}

func (m *mockUserService) Authenticate(email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{Base: models.Base{ID: 1}, Email: email}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock account service ---

type mockAccountService struct {
	createAccountFn  func(in services.AccountInput) (*models.Account, error)
	listAccountsFn   func() ([]services.AccountBalance, error)
	getAccountByIDFn func(id uint) (*models.Account, error)
	updateAccountFn  func(id uint, upd services.AccountUpdate) (*models.Account, error)
	deleteAccountFn  func(id uint) error
	getBalanceFn     func(id uint) (money.Amount, error)
}

func (m *mockAccountService) CreateAccount(in services.AccountInput) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(in)
	}
	return &models.Account{Base: models.Base{ID: 1}, Name: in.Name}, nil
}

func (m *mockAccountService) ListAccounts() ([]services.AccountBalance, error) {
	if m.listAccountsFn != nil {
		return m.listAccountsFn()
	}
	return []services.AccountBalance{}, nil
}

func (m *mockAccountService) GetAccountByID(id uint) (*models.Account, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(id)
	}
	return &models.Account{Base: models.Base{ID: id}}, nil
}

func (m *mockAccountService) UpdateAccount(id uint, upd services.AccountUpdate) (*models.Account, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(id, upd)
	}
	return &models.Account{Base: models.Base{ID: id}}, nil
}

func (m *mockAccountService) DeleteAccount(id uint) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(id)
	}
	return nil
}

func (m *mockAccountService) GetBalance(id uint) (money.Amount, error) {
	if m.getBalanceFn != nil {
		return m.getBalanceFn(id)
	}
	return 0, nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn  func(in services.CategoryInput) (*models.Category, error)
	listCategoriesFn  func() ([]services.CategoryView, error)
	getCategoryByIDFn func(id uint) (*models.Category, error)
	updateCategoryFn  func(id uint, upd services.CategoryUpdate) (*models.Category, error)
	deleteCategoryFn  func(id uint) error
}

func (m *mockCategoryService) CreateCategory(in services.CategoryInput) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(in)
	}
	return &models.Category{Base: models.Base{ID: 1}, Name: in.Name}, nil
}

func (m *mockCategoryService) ListCategories() ([]services.CategoryView, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn()
	}
	return []services.CategoryView{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) UpdateCategory(id uint, upd services.CategoryUpdate) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(id, upd)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) DeleteCategory(id uint) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(in services.TransactionInput) (*models.Transaction, error)
	listTransactionsFn   func(filter services.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error)
	getTransactionByIDFn func(id uint) (*models.Transaction, error)
	updateTransactionFn  func(id uint, upd services.TransactionUpdate) (*models.Transaction, error)
	deleteTransactionFn  func(id uint) error
}

func (m *mockTransactionService) CreateTransaction(in services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(in)
	}
	return &models.Transaction{Base: models.Base{ID: 1}}, nil
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	return &services.TransactionList{
		PageResponse: pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0),
	}, nil
}

func (m *mockTransactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) UpdateTransaction(id uint, upd services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, upd)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) DeleteTransaction(id uint) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock savings goal service ---

type mockSavingsGoalService struct {
	createGoalFn func(in services.SavingsGoalInput) (*models.SavingsGoal, error)
	listGoalsFn  func() ([]models.SavingsGoal, error)
	deleteGoalFn func(id uint) error
	overviewFn   func() (*services.SavingsOverview, error)
}

func (m *mockSavingsGoalService) CreateGoal(in services.SavingsGoalInput) (*models.SavingsGoal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(in)
	}
	return &models.SavingsGoal{Base: models.Base{ID: 1}, Name: in.Name}, nil
}

func (m *mockSavingsGoalService) ListGoals() ([]models.SavingsGoal, error) {
	if m.listGoalsFn != nil {
		return m.listGoalsFn()
	}
	return []models.SavingsGoal{}, nil
}

func (m *mockSavingsGoalService) DeleteGoal(id uint) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(id)
	}
	return nil
}

func (m *mockSavingsGoalService) Overview() (*services.SavingsOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn()
	}
	return &services.SavingsOverview{Goals: []insights.GoalPlan{}, Milestones: []insights.UnlockedMilestone{}}, nil
}

var _ services.SavingsGoalServicer = (*mockSavingsGoalService)(nil)

// --- mock report service ---

type mockReportService struct {
	dashboardFn func() (*services.Dashboard, error)
	reportsFn   func() (*services.Reports, error)
}

func (m *mockReportService) Dashboard() (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn()
	}
	return &services.Dashboard{}, nil
}

func (m *mockReportService) Reports() (*services.Reports, error) {
	if m.reportsFn != nil {
		return m.reportsFn()
	}
	return &services.Reports{}, nil
}

func (m *mockReportService) Totals() (*services.Totals, error) { return &services.Totals{}, nil }

func (m *mockReportService) ExpenseByCategory() ([]services.CategoryTotal, error) {
	return []services.CategoryTotal{}, nil
}

func (m *mockReportService) CategoryLimits() ([]insights.LimitStatus, error) {
	return []insights.LimitStatus{}, nil
}

func (m *mockReportService) MonthlySeries() (*insights.MonthlySeries, error) {
	return &insights.MonthlySeries{}, nil
}

func (m *mockReportService) CategoryDistribution() ([]insights.CategoryShare, error) {
	return []insights.CategoryShare{}, nil
}

func (m *mockReportService) DailyTrend() ([]insights.TrendPoint, error) {
	return []insights.TrendPoint{}, nil
}

func (m *mockReportService) EmotionSummary() ([]insights.EmotionStat, error) {
	return []insights.EmotionStat{}, nil
}

func (m *mockReportService) AccountDistribution() ([]services.AccountShare, error) {
	return []services.AccountShare{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)
