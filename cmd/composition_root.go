package cmd

import (
	"log/slog"

	"invoicing/internal/adapters/out/notifications"
	"invoicing/internal/adapters/out/postgres"
	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/listeners"
	"invoicing/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	// The dispatcher raises delivery confirmations back into the core, so
	// it is built on top of the listener it reports to.
	driver := notifications.NewDummyDriver(logger)
	root.dispatcher = notifications.NewDispatcher(driver, root.CreateMarkInvoiceDeliveredListener(), logger)

	return root
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateSendInvoiceCommandHandler() commands.SendInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendInvoiceCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkInvoiceDeliveredCommandHandler() commands.MarkInvoiceDeliveredCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkInvoiceDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkInvoiceDeliveredListener() listeners.MarkInvoiceDeliveredListener {
	return listeners.NewMarkInvoiceDeliveredListener(c.CreateMarkInvoiceDeliveredCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllInvoicesQueryHandler() queries.GetAllInvoicesQueryHandler {
	return queries.NewGetAllInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) NotificationDispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
