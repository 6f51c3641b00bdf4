package handler

import (
	"time"

	"budget/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// UserResponse is the public view of a user; the password hash never leaves the server.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// TransactionResponse carries amount as a JSON number.
type TransactionResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Date       string    `json:"date"`
	Note       *string   `json:"note"`
	CategoryID *int64    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         txn.ID,
		Title:      txn.Title,
		Amount:     txn.Amount.InexactFloat64(),
		Type:       string(txn.Type),
		Date:       txn.Date.Format(dateLayout),
		Note:       txn.Note,
		CategoryID: txn.CategoryID,
		CreatedAt:  txn.CreatedAt,
	}
}

// CategoryResponse has a null userId for global categories.
type CategoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID *int64 `json:"userId"`
}

func toCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		UserID: category.UserID,
	}
}

// PaginationResponse describes the page of a listing.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// TransactionListResponse is the GET /api/transactions body.
type TransactionListResponse struct {
	Data       []TransactionResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// SummaryResponse is the GET /api/transactions/summary body.
type SummaryResponse struct {
	Totals     SummaryTotals          `json:"totals"`
	Months     []SummaryMonth         `json:"months"`
	ByCategory []SummaryCategoryTotal `json:"byCategory"`
}

type SummaryTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type SummaryMonth struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type SummaryCategoryTotal struct {
	CategoryID *int64  `json:"categoryId"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

func toSummaryResponse(summary *entity.Summary) SummaryResponse {
	months := make([]SummaryMonth, 0, len(summary.Months))
	for _, month := range summary.Months {
		months = append(months, SummaryMonth{
			Month:   time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Income:  month.Income.InexactFloat64(),
			Expense: month.Expense.InexactFloat64(),
		})
	}

	categories := make([]SummaryCategoryTotal, 0, len(summary.ByCategory))
	for _, total := range summary.ByCategory {
		categories = append(categories, SummaryCategoryTotal{
			CategoryID: total.CategoryID,
			Name:       total.Name,
			Total:      total.Amount.InexactFloat64(),
		})
	}

	return SummaryResponse{
		Totals: SummaryTotals{
			Income:  summary.TotalIncome.InexactFloat64(),
			Expense: summary.TotalExpense.InexactFloat64(),
			Net:     summary.Net.InexactFloat64(),
		},
		Months:     months,
		ByCategory: categories,
	}
}
