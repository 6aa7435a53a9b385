package insights

import (
	"sort"

	"butce/internal/money"
)

// CategoryTypeTotal is one row of a (category, type) grouped sum.
type CategoryTypeTotal struct {
	CategoryID uint
	Name       string
	Color      string
	Type       string
	Total      int64
}

// CategoryShare is a category's income and expense totals.
type CategoryShare struct {
	CategoryID uint         `json:"category_id"`
	Name       string       `json:"name"`
	Color      string       `json:"color"`
	Income     money.Amount `json:"income_total"`
	Expense    money.Amount `json:"expense_total"`
}

// Distribute folds grouped rows into one share per category, keeping the
// order in which categories first appear.
func Distribute(rows []CategoryTypeTotal) []CategoryShare {
	shares := make([]CategoryShare, 0, len(rows))
	index := make(map[uint]int, len(rows))
	for _, r := range rows {
		i, ok := index[r.CategoryID]
		if !ok {
			i = len(shares)
			index[r.CategoryID] = i
			shares = append(shares, CategoryShare{CategoryID: r.CategoryID, Name: r.Name, Color: r.Color})
		}
		switch r.Type {
		case "income":
			shares[i].Income += money.Amount(r.Total)
		case "expense":
			shares[i].Expense += money.Amount(r.Total)
		}
	}
	return shares
}

// EmotionStat summarizes the expenses tagged with one emotion.
type EmotionStat struct {
	Emotion string       `json:"emotion"`
	Count   int64        `json:"count"`
	Total   money.Amount `json:"total"`
	Average money.Amount `json:"average"`
}

// NewEmotionStat builds a stat, deriving the average from total and count.
func NewEmotionStat(emotion string, count, total int64) EmotionStat {
	return EmotionStat{
		Emotion: emotion,
		Count:   count,
		Total:   money.Amount(total),
		Average: money.Ratio(total, count),
	}
}

// SortEmotionStats orders stats by total descending, then emotion name.
func SortEmotionStats(stats []EmotionStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Emotion < stats[j].Emotion
	})
}
