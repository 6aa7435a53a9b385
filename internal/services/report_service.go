package services

import (
	"time"

	"gorm.io/gorm"

	"butce/internal/calendar"
	apperrors "butce/internal/errors"
	"butce/internal/insights"
	"butce/internal/models"
	"butce/internal/money"
)

// reportService computes ledger aggregates. Every figure is read from the
// transactions table on each call.
type reportService struct {
	db             *gorm.DB
	now            Clock
	accountService AccountServicer
	savingsService SavingsGoalServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, now Clock, accountService AccountServicer, savingsService SavingsGoalServicer) ReportServicer {
	return &reportService{
		db:             db,
		now:            now,
		accountService: accountService,
		savingsService: savingsService,
	}
}

func (s *reportService) today() time.Time {
	return calendar.DateOf(s.now())
}

// Dashboard assembles the home page figures.
func (s *reportService) Dashboard() (*Dashboard, error) {
	totals, err := s.Totals()
	if err != nil {
		return nil, err
	}
	categoryTotals, err := s.ExpenseByCategory()
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountService.ListAccounts()
	if err != nil {
		return nil, err
	}
	trend, err := s.DailyTrend()
	if err != nil {
		return nil, err
	}
	monthly, err := s.MonthlySeries()
	if err != nil {
		return nil, err
	}
	limits, err := s.CategoryLimits()
	if err != nil {
		return nil, err
	}
	emotions, err := s.EmotionSummary()
	if err != nil {
		return nil, err
	}
	savings, err := s.savingsService.Overview()
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Totals:          *totals,
		CategoryTotals:  categoryTotals,
		AccountBalances: accounts,
		Trend:           trend,
		Monthly:         *monthly,
		CategoryLimits:  limits,
		Emotions:        emotions,
		Savings:         savings,
	}
	if len(categoryTotals) > 0 {
		top := categoryTotals[0]
		d.TopCategory = &top
	}
	return d, nil
}

// Reports assembles the reports page figures.
func (s *reportService) Reports() (*Reports, error) {
	monthly, err := s.MonthlySeries()
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryDistribution()
	if err != nil {
		return nil, err
	}
	accounts, err := s.AccountDistribution()
	if err != nil {
		return nil, err
	}
	return &Reports{Monthly: *monthly, Categories: categories, Accounts: accounts}, nil
}

// Totals returns the all-time income, expense and their difference.
func (s *reportService) Totals() (*Totals, error) {
	var row struct {
		Income  int64
		Expense int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select(typeSumSQL(models.TransactionTypeIncome, "income") + ", " +
			typeSumSQL(models.TransactionTypeExpense, "expense")).
		Scan(&row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &Totals{
		Income:  money.Amount(row.Income),
		Expense: money.Amount(row.Expense),
		Net:     money.Amount(row.Income - row.Expense),
	}, nil
}

// ExpenseByCategory returns all-time expense totals per category, largest first.
func (s *reportService) ExpenseByCategory() ([]CategoryTotal, error) {
	var rows []struct {
		CategoryID uint
		Name       string
		Color      string
		Total      int64
	}
	if err := s.db.Table("categories").
		Select("categories.id AS category_id, categories.name, categories.color, SUM(transactions.amount) AS total").
		Joins("JOIN transactions ON transactions.category_id = categories.id").
		Where("transactions.type = ?", models.TransactionTypeExpense).
		Group("categories.id, categories.name, categories.color").
		Order("total DESC, categories.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, CategoryTotal{
			CategoryID: r.CategoryID,
			Name:       r.Name,
			Color:      r.Color,
			Total:      money.Amount(r.Total),
		})
	}
	return totals, nil
}

// CategoryLimits evaluates every category's spending in the current month
// against its limit.
func (s *reportService) CategoryLimits() ([]insights.LimitStatus, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	month := insights.CurrentMonth(s.today())
	var rows []struct {
		CategoryID uint
		Spent      int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS spent").
		Where("type = ? AND date >= ? AND date < ?", models.TransactionTypeExpense, month.Start, month.End).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	spent := make(map[uint]int64, len(rows))
	for _, r := range rows {
		spent[r.CategoryID] = r.Spent
	}

	statuses := make([]insights.LimitStatus, 0, len(categories))
	for _, c := range categories {
		status := insights.EvaluateLimit(spent[c.ID], c.MonthlyLimit)
		status.CategoryID = c.ID
		status.Name = c.Name
		status.Color = c.Color
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// MonthlySeries sums income and expense for each of the last six months.
func (s *reportService) MonthlySeries() (*insights.MonthlySeries, error) {
	series := &insights.MonthlySeries{}
	for _, w := range insights.LastMonths(s.today(), insights.SeriesMonths) {
		var row struct {
			Income  int64
			Expense int64
		}
		if err := s.db.Model(&models.Transaction{}).
			Select(typeSumSQL(models.TransactionTypeIncome, "income")+", "+
				typeSumSQL(models.TransactionTypeExpense, "expense")).
			Where("date >= ? AND date < ?", w.Start, w.End).
			Scan(&row).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		series.Append(w.Label, row.Income, row.Expense)
	}
	return series, nil
}

// CategoryDistribution returns income and expense totals for every category
// that has at least one transaction, ordered by category name.
func (s *reportService) CategoryDistribution() ([]insights.CategoryShare, error) {
	var rows []insights.CategoryTypeTotal
	if err := s.db.Table("categories").
		Select("categories.id AS category_id, categories.name, categories.color, transactions.type, SUM(transactions.amount) AS total").
		Joins("JOIN transactions ON transactions.category_id = categories.id").
		Group("categories.id, categories.name, categories.color, transactions.type").
		Order("categories.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return insights.Distribute(rows), nil
}

// DailyTrend returns the signed daily totals of the last 30 days, oldest first.
func (s *reportService) DailyTrend() ([]insights.TrendPoint, error) {
	today := s.today()
	start := insights.TrendStart(today, insights.TrendDays)

	var transactions []models.Transaction
	if err := s.db.Select("date, type, amount").
		Where("date >= ? AND date < ?", start, today.AddDate(0, 0, 1)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byDay := make(map[string]int64)
	for i := range transactions {
		t := &transactions[i]
		byDay[calendar.FormatISO(calendar.DateOf(t.Date.UTC()))] += int64(t.SignedAmount())
	}
	return insights.DailyTrend(today, insights.TrendDays, byDay), nil
}

// EmotionSummary groups this month's tagged expenses by emotion.
func (s *reportService) EmotionSummary() ([]insights.EmotionStat, error) {
	month := insights.CurrentMonth(s.today())
	var rows []struct {
		Emotion string
		Count   int64
		Total   int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("emotion, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND emotion IS NOT NULL AND emotion <> '' AND date >= ? AND date < ?",
			models.TransactionTypeExpense, month.Start, month.End).
		Group("emotion").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := make([]insights.EmotionStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, insights.NewEmotionStat(r.Emotion, r.Count, r.Total))
	}
	insights.SortEmotionStats(stats)
	return stats, nil
}

// AccountDistribution returns every account's balance, ordered by name.
func (s *reportService) AccountDistribution() ([]AccountShare, error) {
	accounts, err := s.accountService.ListAccounts()
	if err != nil {
		return nil, err
	}
	shares := make([]AccountShare, 0, len(accounts))
	for _, a := range accounts {
		shares = append(shares, AccountShare{Label: a.Name, Value: a.Balance})
	}
	return shares, nil
}
