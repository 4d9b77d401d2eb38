package cmd

import (
	"log/slog"

	httpadapter "orderwizard/internal/adapters/in/http"
	"orderwizard/internal/adapters/out/memory"
	"orderwizard/internal/adapters/out/orderapi"
	"orderwizard/internal/adapters/out/postgres"
	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	wizardRepo *memory.WizardRepository
	dispatcher *services.SubmissionDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	dispatcher, err := NewSubmissionDispatcher(config, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		wizardRepo: memory.NewWizardRepository(nil),
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// NewSubmissionDispatcher builds the fire-and-forget dispatcher that posts
// submitted forms to the order API and logs failures.
func NewSubmissionDispatcher(config Config, logger *slog.Logger) (*services.SubmissionDispatcher, error) {
	client, err := orderapi.NewClient(config.OrderAPIURL, config.OrderAPITimeout)
	if err != nil {
		return nil, err
	}

	return services.NewSubmissionDispatcher(
		client,
		services.WithFailureHook(services.LogFailure(logger)),
	), nil
}

func (c *CompositionRoot) CreateStartWizardCommandHandler() commands.StartWizardCommandHandler {
	return commands.NewStartWizardCommandHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateSetFieldCommandHandler() commands.SetFieldCommandHandler {
	return commands.NewSetFieldCommandHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateAdvanceStepCommandHandler() commands.AdvanceStepCommandHandler {
	return commands.NewAdvanceStepCommandHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateRetreatStepCommandHandler() commands.RetreatStepCommandHandler {
	return commands.NewRetreatStepCommandHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateSubmitWizardCommandHandler() commands.SubmitWizardCommandHandler {
	return commands.NewSubmitWizardCommandHandler(c.wizardRepo, c.dispatcher)
}

func (c *CompositionRoot) CreateExpireWizardsCommandHandler() commands.ExpireWizardsCommandHandler {
	return commands.NewExpireWizardsCommandHandler(c.wizardRepo, nil)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateGetWizardQueryHandler() queries.GetWizardQueryHandler {
	return queries.NewGetWizardQueryHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateExportWizardQueryHandler() queries.ExportWizardQueryHandler {
	return queries.NewExportWizardQueryHandler(c.wizardRepo)
}

func (c *CompositionRoot) CreateGetReceivedOrdersQueryHandler() queries.GetReceivedOrdersQueryHandler {
	return queries.NewGetReceivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		StartWizard:   c.CreateStartWizardCommandHandler(),
		SetField:      c.CreateSetFieldCommandHandler(),
		AdvanceStep:   c.CreateAdvanceStepCommandHandler(),
		RetreatStep:   c.CreateRetreatStepCommandHandler(),
		SubmitWizard:  c.CreateSubmitWizardCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		GetWizard:     c.CreateGetWizardQueryHandler(),
		ExportWizard:  c.CreateExportWizardQueryHandler(),
		ReceivedOrder: c.CreateGetReceivedOrdersQueryHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
	}, c.config.Locale(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireWizardsCommandHandler(),
		c.config.WizardSweepSchedule,
		c.config.WizardIdleTTL,
		c.logger,
	)
}

// Shutdown waits for in-flight submissions.
func (c *CompositionRoot) Shutdown() {
	c.dispatcher.Wait()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
