package services

import (
	"time"

	"butce/internal/insights"
	"butce/internal/models"
	"butce/internal/money"
	"butce/internal/pagination"
)

// Clock returns the current time. Services derive "today" from it so tests
// can pin the date.
type Clock func() time.Time

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// AccountInput holds the fields of a new account.
type AccountInput struct {
	Name        string
	Description string
	Currency    string
}

// AccountUpdate holds optional account changes. Nil fields keep their value.
type AccountUpdate struct {
	Name        *string
	Description *string
	Currency    *string
}

// AccountBalance is an account together with its derived balance.
type AccountBalance struct {
	models.Account
	Balance          money.Amount `json:"balance"`
	FormattedBalance string       `json:"formatted_balance"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(in AccountInput) (*models.Account, error)
	ListAccounts() ([]AccountBalance, error)
	GetAccountByID(id uint) (*models.Account, error)
	UpdateAccount(id uint, upd AccountUpdate) (*models.Account, error)
	DeleteAccount(id uint) error
	GetBalance(id uint) (money.Amount, error)
}

// CategoryInput holds the fields of a new category. MonthlyLimit is in minor
// units; nil means no limit.
type CategoryInput struct {
	Name         string
	Color        string
	MonthlyLimit *int64
}

// CategoryUpdate holds optional category changes. Nil fields keep their
// value; ClearLimit removes the monthly limit.
type CategoryUpdate struct {
	Name         *string
	Color        *string
	MonthlyLimit *int64
	ClearLimit   bool
}

// CategoryView is a category as shown in listings.
type CategoryView struct {
	models.Category
	Limit *money.Amount `json:"monthly_limit"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(in CategoryInput) (*models.Category, error)
	ListCategories() ([]CategoryView, error)
	GetCategoryByID(id uint) (*models.Category, error)
	UpdateCategory(id uint, upd CategoryUpdate) (*models.Category, error)
	DeleteCategory(id uint) error
}

// TransactionInput holds the fields of a new transaction. A zero Date means today.
type TransactionInput struct {
	Date        time.Time
	CategoryID  uint
	AccountID   uint
	Type        models.TransactionType
	Amount      int64
	Description string
	Emotion     string
}

// TransactionUpdate holds optional transaction changes. Nil fields keep their value.
type TransactionUpdate struct {
	Date        *time.Time
	CategoryID  *uint
	AccountID   *uint
	Type        *models.TransactionType
	Amount      *int64
	Description *string
	Emotion     *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Both date bounds are inclusive.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uint
	Type       *models.TransactionType
}

// TransactionList is a page of transactions plus the signed total of every
// transaction matching the filter.
type TransactionList struct {
	pagination.PageResponse[models.Transaction]
	Total money.Amount `json:"total"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(in TransactionInput) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*TransactionList, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	UpdateTransaction(id uint, upd TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id uint) error
}

// SavingsGoalInput holds the fields of a new savings goal. A zero StartDate means today.
type SavingsGoalInput struct {
	Name         string
	TargetAmount int64
	StartDate    time.Time
	TargetDate   time.Time
}

// SavingsOverview is the computed state of every goal plus the milestones
// they have unlocked.
type SavingsOverview struct {
	Goals      []insights.GoalPlan          `json:"goals"`
	Milestones []insights.UnlockedMilestone `json:"milestones"`
}

// SavingsGoalServicer defines the contract for savings-goal business logic.
type SavingsGoalServicer interface {
	CreateGoal(in SavingsGoalInput) (*models.SavingsGoal, error)
	ListGoals() ([]models.SavingsGoal, error)
	DeleteGoal(id uint) error
	Overview() (*SavingsOverview, error)
}

// Totals are the all-time income and expense sums of the ledger.
type Totals struct {
	Income  money.Amount `json:"income"`
	Expense money.Amount `json:"expense"`
	Net     money.Amount `json:"net"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	CategoryID uint         `json:"category_id"`
	Name       string       `json:"name"`
	Color      string       `json:"color"`
	Total      money.Amount `json:"total"`
}

// AccountShare is one slice of the account distribution chart.
type AccountShare struct {
	Label string       `json:"label"`
	Value money.Amount `json:"value"`
}

// Dashboard is everything shown on the home page.
type Dashboard struct {
	Totals          Totals                 `json:"totals"`
	CategoryTotals  []CategoryTotal        `json:"category_totals"`
	TopCategory     *CategoryTotal         `json:"top_category"`
	AccountBalances []AccountBalance       `json:"account_balances"`
	Trend           []insights.TrendPoint  `json:"trend"`
	Monthly         insights.MonthlySeries `json:"monthly"`
	CategoryLimits  []insights.LimitStatus `json:"category_limits"`
	Emotions        []insights.EmotionStat `json:"emotions"`
	Savings         *SavingsOverview       `json:"savings"`
}

// Reports is everything shown on the reports page.
type Reports struct {
	Monthly    insights.MonthlySeries   `json:"monthly"`
	Categories []insights.CategoryShare `json:"categories"`
	Accounts   []AccountShare           `json:"accounts"`
}

// ReportServicer defines the contract for ledger aggregations.
type ReportServicer interface {
	Dashboard() (*Dashboard, error)
	Reports() (*Reports, error)
	Totals() (*Totals, error)
	ExpenseByCategory() ([]CategoryTotal, error)
	CategoryLimits() ([]insights.LimitStatus, error)
	MonthlySeries() (*insights.MonthlySeries, error)
	CategoryDistribution() ([]insights.CategoryShare, error)
	DailyTrend() ([]insights.TrendPoint, error)
	EmotionSummary() ([]insights.EmotionStat, error)
	AccountDistribution() ([]AccountShare, error)
}
