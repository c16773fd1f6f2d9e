package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

const (
	defaultSampleRows = 50
	maxSampleRows     = 500
	sampleSpanDays    = 90

	// One in twelve generated rows is an income deposit.
	incomeOneIn = 12
)

var ErrSampleDataDisabled = errors.New("sample data generation is only available in development and testing")

// sampleMerchant is one pool entry: a raw string the way a bank export
// would render it, plus the category and amount range of its purchases.
// Several entries are variants of the same brand so generated sheets give
// the normalizer and grouper something to chew on.
type sampleMerchant struct {
	raw      string
	category string
	min      float64
	max      float64
}

var sampleMerchants = []sampleMerchant{
	{"WAL-MART #3454", "Groceries", 15, 180},
	{"WALMART STORE 981", "Groceries", 15, 180},
	{"COSTCO WHOLESALE #55", "Groceries", 40, 320},
	{"SAFEWAY 2204", "Groceries", 12, 140},
	{"MCDONALD'S #1234", "Dining", 6, 35},
	{"MCDONALDS 40382", "Dining", 6, 35},
	{"TIM HORTONS #45", "Dining", 3, 18},
	{"TIM HORTON'S 2210", "Dining", 3, 18},
	{"STARBUCKS #722", "Dining", 4, 22},
	{"SQ *BLUE BOTTLE COFFEE", "Dining", 5, 24},
	{"UBER TRIP HELP.UBER.COM", "Transport", 8, 60},
	{"UBER EATS TORONTO", "Dining", 15, 70},
	{"LYFT *RIDE THU 9PM", "Transport", 8, 55},
	{"SHELL 40382", "Transport", 25, 95},
	{"ESSO CIRCLE K 881", "Transport", 25, 95},
	{"AMZN Mktp CA*2B44T", "Shopping", 10, 220},
	{"AMAZON.CA PRIME", "Shopping", 9, 9.99},
	{"APPLE.COM/BILL", "Entertainment", 1, 30},
	{"NETFLIX.COM", "Entertainment", 17, 23},
	{"SPOTIFY P2345A", "Entertainment", 10, 17},
	{"SHOPPERS DRUG MART #0199", "Health", 8, 90},
	{"PAYPAL *STEAMGAMES", "Entertainment", 5, 80},
}

var sampleAccounts = []string{"Visa", "Amex", "Chequing"}

// sampleDataService appends generated transaction rows to a sheet so a
// fresh install has something to render. Generation refuses to run in
// production; it writes straight into the user's spreadsheet.
type sampleDataService struct {
	store       sheets.Store
	audit       AuditLoggerInterface
	environment string
	faker       *gofakeit.Faker
}

// NewSampleDataService creates a sample data generator for the given
// runtime environment.
func NewSampleDataService(store sheets.Store, audit AuditLoggerInterface, environment string) SampleDataServiceInterface {
	return &sampleDataService{
		store:       store,
		audit:       audit,
		environment: environment,
		faker:       gofakeit.New(0),
	}
}

// Generate appends rows generated transactions to the sheet and returns how
// many were written. Rows spread over the trailing ninety days, lean mostly
// expense, and reuse messy raw merchant strings with deliberate variants.
func (s *sampleDataService) Generate(ctx context.Context, sheet string, rows int) (int, error) {
	if s.environment != "development" && s.environment != "testing" {
		return 0, ErrSampleDataDisabled
	}

	if rows <= 0 {
		rows = defaultSampleRows
	}
	if rows > maxSampleRows {
		rows = maxSampleRows
	}

	table, err := s.store.ReadAll(ctx, sheet)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", sheet, err)
	}

	cm, err := models.ResolveColumns(table)
	if err != nil {
		return 0, fmt.Errorf("resolve columns on %s: %w", sheet, err)
	}

	width := table.ColumnCount()
	now := time.Now().UTC()

	generated := make([][]string, 0, rows)
	for i := 0; i < rows; i++ {
		generated = append(generated, s.generateRow(cm, width, now))
	}

	if cm.Date >= 0 {
		// ISO date cells sort chronologically as strings.
		sort.Slice(generated, func(i, j int) bool {
			return generated[i][cm.Date] < generated[j][cm.Date]
		})
	}

	if err := s.store.AppendRows(ctx, sheet, generated); err != nil {
		return 0, fmt.Errorf("append to %s: %w", sheet, err)
	}

	if s.audit != nil {
		s.audit.LogSampleDataGenerated(ctx, sheet, len(generated))
	}
	return len(generated), nil
}

func (s *sampleDataService) generateRow(cm models.ColumnMap, width int, now time.Time) []string {
	row := make([]string, width)

	date := now.AddDate(0, 0, -s.faker.Number(0, sampleSpanDays-1))
	setCell(row, cm.Date, date.Format("2006-01-02"))
	setCell(row, cm.Account, sampleAccounts[s.faker.Number(0, len(sampleAccounts)-1)])
	setCell(row, cm.ID, uuid.NewString())

	if s.faker.Number(1, incomeOneIn) == 1 {
		amount := decimal.NewFromFloat(s.faker.Price(1200, 2600)).Round(2)
		setCell(row, cm.Merchant, "PAYROLL DEPOSIT ACME CORP")
		setCell(row, cm.Amount, amount.StringFixed(2))
		setCell(row, cm.Description, "Direct deposit")
		setCell(row, cm.Category, "Income")
		return row
	}

	merchant := sampleMerchants[s.faker.Number(0, len(sampleMerchants)-1)]
	amount := decimal.NewFromFloat(s.faker.Price(merchant.min, merchant.max)).Round(2)

	setCell(row, cm.Merchant, merchant.raw)
	setCell(row, cm.Amount, amount.Neg().StringFixed(2))
	setCell(row, cm.Description, "Card purchase")
	setCell(row, cm.Category, merchant.category)
	return row
}

func setCell(row []string, idx int, value string) {
	if idx < 0 || idx >= len(row) {
		return
	}
	row[idx] = value
}
