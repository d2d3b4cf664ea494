package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/handlers"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "bookkeeping-test"
)

// LedgerAPITestSuite drives the HTTP surface against the in-memory store.
type LedgerAPITestSuite struct {
	suite.Suite
	cfg      *config.Config
	services *portssvc.ServiceContainer
	router   *gin.Engine
	userID   string
	token    string
	accounts map[string]domain.Account // by code
}

// generateTestToken creates a signed JWT for testing.
func generateTestToken(t *testing.T, userID string, issuer string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func newTestRouter(cfg *config.Config, svc *portssvc.ServiceContainer, lim *limiter.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, svc, lim)
	return r
}

func (s *LedgerAPITestSuite) SetupTest() {
	ctx := context.Background()
	s.cfg = &config.Config{
		JWTSecret:           testSecret,
		JWTIssuer:           testIssuer,
		PostingMaxAttempts:  3,
		PostingRetryBackoff: time.Millisecond,
		LedgerLocation:      time.UTC,
	}
	repos := memory.NewRepositoryProvider(memory.NewStore())

	seeded, err := services.NewServiceContainer(s.cfg, repos).Account.SeedDefaultChart(ctx, "system")
	s.Require().NoError(err)
	s.cfg.DesignatedAccounts = s.cfg.DesignatedAccounts.FillFromChart(seeded)
	s.services = services.NewServiceContainer(s.cfg, repos)

	s.accounts = make(map[string]domain.Account, len(seeded))
	for _, a := range seeded {
		s.accounts[a.Code] = a
	}
	s.userID = uuid.NewString()
	s.token = generateTestToken(s.T(), s.userID, testIssuer, time.Hour)
	s.router = newTestRouter(s.cfg, s.services, nil)
}

func (s *LedgerAPITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LedgerAPITestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *LedgerAPITestSuite) postEntry(debitCode, creditCode string, amount string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"transactionType": "SALE",
		"description":     "Counter sale",
		"lines": []gin.H{
			{"accountId": s.accounts[debitCode].AccountID, "side": "DEBIT", "amount": amount},
			{"accountId": s.accounts[creditCode].AccountID, "side": "CREDIT", "amount": amount},
		},
	})
}

func (s *LedgerAPITestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *LedgerAPITestSuite) TestSwaggerDocsOutsideProduction() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	s.Require().Equal(http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	s.decode(w, &doc)
	s.Equal("/api/v1", doc.BasePath)
	s.Contains(doc.Paths["/accounts/{id}"], "patch")
	s.Contains(doc.Paths["/journal-entries"], "post")
	s.Contains(doc.Paths, "/reports/trial-balance")

	prodCfg := *s.cfg
	prodCfg.IsProduction = true
	w = httptest.NewRecorder()
	newTestRouter(&prodCfg, s.services, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LedgerAPITestSuite) TestRejectsMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *LedgerAPITestSuite) TestCreateAndListAccounts() {
	w := s.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"code": "1300", "name": "Petty Cash", "accountType": "ASSET",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.AccountResponse
	s.decode(w, &created)
	s.Equal("1300", created.Code)
	s.True(created.Balance.IsZero())
	s.True(created.IsActive)

	w = s.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"code": "1300", "name": "Another", "accountType": "ASSET",
	})
	s.Equal(http.StatusConflict, w.Code, "duplicate code")

	w = s.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"code": "1400", "name": "Bad", "accountType": "REVENUE",
	})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/accounts?type=ASSET", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListAccountsResponse
	s.decode(w, &list)
	for _, a := range list.Accounts {
		s.Equal(domain.Asset, a.AccountType)
	}
	s.Len(list.Accounts, 4, "cash, receivable, inventory and petty cash")
}

func (s *LedgerAPITestSuite) TestUpdateAccount() {
	path := "/api/v1/accounts/" + s.accounts["1200"].AccountID
	w := s.do(http.MethodPatch, path, gin.H{"name": "Stock on Hand", "description": "Warehouse stock"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated dto.AccountResponse
	s.decode(w, &updated)
	s.Equal("Stock on Hand", updated.Name)
	s.Equal("1200", updated.Code)
	s.Equal(s.userID, updated.LastUpdatedBy)

	w = s.do(http.MethodPatch, path, gin.H{"code": "1000"})
	s.Equal(http.StatusConflict, w.Code, "code taken by cash")

	w = s.do(http.MethodPatch, path, gin.H{"accountType": "REVENUE"})
	s.Equal(http.StatusBadRequest, w.Code)

	s.Require().Equal(http.StatusCreated, s.postEntry("1200", "1000", "5").Code)
	w = s.do(http.MethodPatch, path, gin.H{"accountType": "EXPENSE"})
	s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = s.do(http.MethodPatch, "/api/v1/accounts/"+uuid.NewString(), gin.H{"name": "Ghost"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LedgerAPITestSuite) TestPostEntryUpdatesBalances() {
	w := s.postEntry("1000", "4000", "100.00")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var entry dto.JournalEntryResponse
	s.decode(w, &entry)
	s.Regexp(`^JE-\d{8}-0001$`, entry.EntryNumber)
	s.True(entry.TotalAmount.Equal(decimal.NewFromInt(100)))
	s.Len(entry.Lines, 2)
	s.Equal(s.userID, entry.CreatedBy)

	w = s.do(http.MethodGet, "/api/v1/accounts/"+s.accounts["1000"].AccountID+"/balance", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var bal dto.AccountBalanceResponse
	s.decode(w, &bal)
	s.True(bal.Balance.Equal(decimal.NewFromInt(100)), bal.Balance.String())
	s.NotNil(bal.LastTransactionDate)

	w = s.do(http.MethodGet, "/api/v1/journal-entries/"+entry.EntryID, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *LedgerAPITestSuite) TestUnbalancedEntryReportsTotals() {
	w := s.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"transactionType": "ADJUSTMENT",
		"lines": []gin.H{
			{"accountId": s.accounts["1000"].AccountID, "side": "DEBIT", "amount": "100"},
			{"accountId": s.accounts["4000"].AccountID, "side": "CREDIT", "amount": "90"},
		},
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	s.decode(w, &body)
	s.Equal("100.00", body["totalDebit"])
	s.Equal("90.00", body["totalCredit"])
}

func (s *LedgerAPITestSuite) TestUnknownAndInactiveAccounts() {
	w := s.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"transactionType": "PAYMENT",
		"lines": []gin.H{
			{"accountId": uuid.NewString(), "side": "DEBIT", "amount": "10"},
			{"accountId": s.accounts["1000"].AccountID, "side": "CREDIT", "amount": "10"},
		},
	})
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/accounts/"+s.accounts["1200"].AccountID, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.postEntry("1200", "1000", "10")
	s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
}

func (s *LedgerAPITestSuite) TestReverseOnlyOnce() {
	w := s.postEntry("1000", "4000", "40")
	s.Require().Equal(http.StatusCreated, w.Code)
	var entry dto.JournalEntryResponse
	s.decode(w, &entry)

	w = s.do(http.MethodPost, "/api/v1/journal-entries/"+entry.EntryID+"/reverse", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.JournalEntryResponse
	s.decode(w, &reversal)
	s.Equal(domain.ReferenceTypeReversal, reversal.ReferenceType)
	s.Equal(entry.EntryID, reversal.ReferenceID)

	w = s.do(http.MethodPost, "/api/v1/journal-entries/"+entry.EntryID+"/reverse", nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodGet, "/api/v1/accounts/"+s.accounts["1000"].AccountID+"/balance", nil)
	var bal dto.AccountBalanceResponse
	s.decode(w, &bal)
	s.True(bal.Balance.IsZero(), bal.Balance.String())
}

func (s *LedgerAPITestSuite) TestPostingsAndTrialBalance() {
	w := s.do(http.MethodPost, "/api/v1/postings/sales", gin.H{
		"saleId": "S-1", "totalAmount": "250", "paidAmount": "200",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/postings/expenses", gin.H{
		"expenseAccountId": s.accounts["6000"].AccountID, "amount": "30", "description": "Stationery",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/postings/payments", gin.H{
		"fromAccountId": s.accounts["1000"].AccountID, "toAccountId": s.accounts["1000"].AccountID, "amount": "5",
	})
	s.Equal(http.StatusBadRequest, w.Code, "same from and to account")

	w = s.do(http.MethodGet, "/api/v1/reports/trial-balance", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var tb dto.TrialBalanceResponse
	s.decode(w, &tb)
	s.True(tb.IsBalanced)
	s.True(tb.Totals.Debit.Equal(decimal.NewFromInt(250)), tb.Totals.Debit.String())

	w = s.do(http.MethodGet, "/api/v1/journal-entries?pageSize=1", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListJournalEntriesResponse
	s.decode(w, &page)
	s.Equal(2, page.Total)
	s.Len(page.Entries, 1)
	s.Equal(2, page.TotalPages)
}

func (s *LedgerAPITestSuite) TestStatementAndBooks() {
	s.Require().Equal(http.StatusCreated, s.postEntry("1000", "4000", "70").Code)

	cash := s.accounts["1000"].AccountID
	w := s.do(http.MethodGet, "/api/v1/accounts/"+cash+"/statement", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var st dto.AccountStatementResponse
	s.decode(w, &st)
	s.True(st.OpeningBalance.IsZero())
	s.True(st.ClosingBalance.Equal(decimal.NewFromInt(70)))
	s.Require().Len(st.Lines, 1)
	s.True(st.Lines[0].RunningBalance.Equal(decimal.NewFromInt(70)))

	w = s.do(http.MethodGet, "/api/v1/accounts/"+cash+"/statement?startDate=2024-02-01&endDate=2024-01-01", nil)
	s.Equal(http.StatusBadRequest, w.Code, "inverted range")

	w = s.do(http.MethodGet, "/api/v1/ledger/general?startDate=not-a-date", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/ledger/day-book", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var book struct {
		Entries []dto.JournalEntryResponse `json:"entries"`
	}
	s.decode(w, &book)
	s.Len(book.Entries, 1)

	w = s.do(http.MethodGet, "/api/v1/accounts/"+uuid.NewString()+"/ledger", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LedgerAPITestSuite) TestWriteRoutesAreRateLimited() {
	lim, err := middleware.NewRateLimiter("1-H")
	s.Require().NoError(err)
	s.router = newTestRouter(s.cfg, s.services, lim)

	s.Equal(http.StatusCreated, s.postEntry("1000", "4000", "1").Code)
	s.Equal(http.StatusTooManyRequests, s.postEntry("1000", "4000", "1").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/journal-entries", nil).Code, "reads are not throttled")
}

func TestLedgerAPI(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}
