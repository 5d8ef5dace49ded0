package queries_test

import (
	"context"
	"testing"
	"time"

	"invoicing/internal/adapters/out/postgres/invoicerepo"
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllInvoicesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllInvoicesQueryHandler
	repo      *invoicerepo.GormInvoiceRepository
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&invoicerepo.InvoiceDTO{}, &invoicerepo.InvoiceLineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllInvoicesQueryHandler(db)
	suite.repo = invoicerepo.NewGormInvoiceRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE invoices, invoice_lines").Error
	suite.Require().NoError(err)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) storeInvoice(customerName string, lineNames ...string) *invoice.Invoice {
	email, err := invoice.NewEmail("jane@example.com")
	suite.Require().NoError(err)
	customer, err := invoice.NewCustomer(customerName, email)
	suite.Require().NoError(err)

	lines := make([]invoice.InvoiceLine, 0, len(lineNames))
	for i, name := range lineNames {
		line, lineErr := invoice.NewInvoiceLine(kernel.NewUUID(), name, i+1, (i+1)*100)
		suite.Require().NoError(lineErr)
		lines = append(lines, line)
	}

	inv, err := invoice.NewInvoice(kernel.NewUUID(), customer, lines)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), inv))
	return inv
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_ReturnsAllInvoicesWithLines() {
	suite.storeInvoice("Alice", "Widget")
	suite.storeInvoice("Bob", "Gadget", "Sprocket")

	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Ordered by customer name.
	suite.Equal("Alice", result[0].CustomerName)
	suite.Equal("Bob", result[1].CustomerName)

	suite.Require().Len(result[0].Lines, 1)
	suite.Equal("Widget", result[0].Lines[0].Name)
	suite.Equal(100, result[0].TotalPrice)

	suite.Require().Len(result[1].Lines, 2)
	suite.Equal("Gadget", result[1].Lines[0].Name)
	suite.Equal("Sprocket", result[1].Lines[1].Name)
	suite.Equal(500, result[1].TotalPrice)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_InvoiceWithoutLines() {
	suite.storeInvoice("Alice")

	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Empty(result[0].Lines)
	suite.Equal(0, result[0].TotalPrice)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_ValidationError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAllInvoicesQuery{})

	suite.Require().Error(err)
}

func TestGetAllInvoicesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllInvoicesQueryHandlerTestSuite))
}
