package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/response"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// TransactionHandler serves the caller's ledger.
type TransactionHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// CreateTransactionRequest is the POST /api/transactions body. Amount and
// categoryId accept a JSON number or a numeric string.
type CreateTransactionRequest struct {
	Title      string          `json:"title" validate:"max=1000"`
	Amount     json.RawMessage `json:"amount"`
	Type       string          `json:"type" validate:"max=32"`
	Date       string          `json:"date" validate:"max=64"`
	Note       *string         `json:"note" validate:"omitempty,max=5000"`
	CategoryID json.RawMessage `json:"categoryId"`
}

type deleteTransactionResponse struct {
	ID int64 `json:"id"`
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	filter := entity.TransactionFilter{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	var err error
	if filter.From, err = queryDate(c, "from", "Invalid 'from' date."); err != nil {
		return response.HandleAppError(c, err)
	}
	if filter.To, err = queryDate(c, "to", "Invalid 'to' date."); err != nil {
		return response.HandleAppError(c, err)
	}
	if raw := c.QueryParam("type"); raw != "" {
		txnType := entity.TransactionType(raw)
		if !txnType.IsValid() {
			return response.BadRequest(c, "Invalid 'type'.")
		}
		filter.Type = &txnType
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return response.BadRequest(c, "Invalid 'categoryId'.")
		}
		filter.CategoryID = &categoryID
	}

	page, err := h.ledgerUC.ListTransactions(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]TransactionResponse, 0, len(page.Items))
	for _, txn := range page.Items {
		data = append(data, toTransactionResponse(txn))
	}

	return response.Success(c, http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: PaginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	})
}

// Summary handles GET /api/transactions/summary.
func (h *TransactionHandler) Summary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	from, err := queryDate(c, "from", "Invalid 'from' date.")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := queryDate(c, "to", "Invalid 'to' date.")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.ledgerUC.GetSummary(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSummaryResponse(summary))
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if strings.TrimSpace(req.Title) == "" {
		return response.BadRequest(c, "Title is required.")
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		return response.BadRequest(c, "Amount must be > 0.")
	}
	txnType := entity.TransactionType(req.Type)
	if !txnType.IsValid() {
		return response.BadRequest(c, "Type must be 'income' or 'expense'.")
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return response.BadRequest(c, "Invalid date.")
	}
	categoryID, ok := parseCategoryID(req.CategoryID)
	if !ok {
		return response.BadRequest(c, "Valid categoryId required.")
	}

	txn, err := h.ledgerUC.CreateTransaction(c.Request().Context(), userID, usecase.CreateTransactionInput{
		Title:      req.Title,
		Amount:     amount,
		Type:       txnType,
		Date:       date,
		Note:       req.Note,
		CategoryID: categoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.DataBody{
		Message: "Transaction created successfully.",
		Data:    toTransactionResponse(txn),
	})
}

// Update handles PATCH /api/transactions/:id. Absent fields are untouched and
// "categoryId": null clears the category.
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid id.")
	}

	var body map[string]json.RawMessage
	if err := new(echo.DefaultBinder).BindBody(c, &body); err != nil {
		return response.BindingError(c)
	}

	patch, message := parsePatch(body)
	if message != "" {
		return response.BadRequest(c, message)
	}

	txn, err := h.ledgerUC.UpdateTransaction(c.Request().Context(), userID, id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.DataBody{
		Message: "Transaction updated successfully.",
		Data:    toTransactionResponse(txn),
	})
}

// Delete handles DELETE /api/transactions/:id.
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid id.")
	}

	if err := h.ledgerUC.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deleteTransactionResponse{ID: id})
}

// parsePatch returns a non-empty message for the first invalid field.
func parsePatch(body map[string]json.RawMessage) (entity.TransactionPatch, string) {
	var patch entity.TransactionPatch

	if raw, ok := body["title"]; ok {
		var title string
		if json.Unmarshal(raw, &title) != nil || strings.TrimSpace(title) == "" {
			return patch, "Title cannot be empty."
		}
		patch.Title = &title
	}

	if raw, ok := body["amount"]; ok {
		amount, valid := parseAmount(raw)
		if !valid {
			return patch, "Amount must be > 0."
		}
		patch.Amount = &amount
	}

	if raw, ok := body["type"]; ok {
		var value string
		_ = json.Unmarshal(raw, &value)
		txnType := entity.TransactionType(strings.ToLower(strings.TrimSpace(value)))
		if !txnType.IsValid() {
			return patch, "Invalid type."
		}
		patch.Type = &txnType
	}

	if raw, ok := body["date"]; ok {
		var value string
		_ = json.Unmarshal(raw, &value)
		date, valid := parseDate(value)
		if !valid {
			return patch, "Invalid date."
		}
		patch.Date = &date
	}

	if raw, ok := body["note"]; ok {
		note := ""
		if !isNull(raw) && json.Unmarshal(raw, &note) != nil {
			return patch, "Invalid note."
		}
		patch.Note = &note
	}

	if raw, ok := body["categoryId"]; ok {
		if isNull(raw) {
			patch.ClearCategory = true
		} else {
			categoryID, valid := parseCategoryID(raw)
			if !valid || categoryID == nil {
				return patch, "Valid categoryId required."
			}
			patch.CategoryID = categoryID
		}
	}

	return patch, ""
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// parseAmount accepts 12.5 or "12.5" and requires a positive value.
func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	if isNull(raw) {
		return decimal.Zero, false
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, false
	}

	// Amounts are stored in cents; anything that rounds to zero is rejected.
	return amount, amount.Round(2).IsPositive()
}

// parseCategoryID returns nil for an absent or null value.
func parseCategoryID(raw json.RawMessage) (*int64, bool) {
	if isNull(raw) {
		return nil, true
	}

	text := strings.Trim(string(raw), `"`)
	categoryID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, false
	}

	return &categoryID, true
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if date, err := time.Parse(dateLayout, value); err == nil {
		return date, true
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts.UTC(), true
	}

	return time.Time{}, false
}

func queryDate(c echo.Context, name, message string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, ok := parseDate(raw)
	if !ok {
		return nil, domainerrors.Validation(message)
	}

	return &date, nil
}

// queryInt yields 0 for missing or malformed values so the usecase applies its default.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
