package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Default payment policy tuning. One flat bonus per ten distance units up
// to three tiers, and half a unit of pay per weight unit over five.
const (
	distanceTierSize  = 10
	distanceTierLimit = 3
	weightFreeUnits   = 5
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator services.PaymentCalculator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	distancePolicy, err := services.NewTieredDistanceBonus(
		distanceTierSize, decimal.NewFromInt(5), distanceTierLimit)
	if err != nil {
		return CompositionRoot{}, err
	}

	weightPolicy, err := services.NewPerUnitWeightBonus(
		decimal.NewFromFloat(0.5), weightFreeUnits)
	if err != nil {
		return CompositionRoot{}, err
	}

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: calculator,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrganizationCommandHandler() commands.CreateOrganizationCommandHandler {
	var f commands.OrganizationUoWFactory = FuncOrganizationUoWFactory(func() commands.OrganizationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrganizationCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewRequestCommandHandler() commands.ReviewRequestCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceStatusCommandHandler(f, c.calculator)
}

func (c *CompositionRoot) CreateInviteWorkerCommandHandler() commands.InviteWorkerCommandHandler {
	var f commands.HiringUoWFactory = FuncHiringUoWFactory(func() commands.HiringUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInviteWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyToOrganizationCommandHandler() commands.ApplyToOrganizationCommandHandler {
	var f commands.HiringUoWFactory = FuncHiringUoWFactory(func() commands.HiringUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyToOrganizationCommandHandler(f)
}

func (c *CompositionRoot) CreateRespondHiringCommandHandler() commands.RespondHiringCommandHandler {
	var f commands.HiringUoWFactory = FuncHiringUoWFactory(func() commands.HiringUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondHiringCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepPaymentsCommandHandler() commands.SweepPaymentsCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepPaymentsCommandHandler(f, c.calculator)
}

func (c *CompositionRoot) CreateGetMerchantAssignmentsQueryHandler() queries.GetMerchantAssignmentsQueryHandler {
	return queries.NewGetMerchantAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrganizationAssignmentsQueryHandler() queries.GetOrganizationAssignmentsQueryHandler {
	return queries.NewGetOrganizationAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerAssignmentsQueryHandler() queries.GetWorkerAssignmentsQueryHandler {
	return queries.NewGetWorkerAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerPaymentsQueryHandler() queries.GetWorkerPaymentsQueryHandler {
	return queries.NewGetWorkerPaymentsQueryHandler(c.gormDB)
}

type FuncOrganizationUoWFactory func() commands.OrganizationUoW

func (f FuncOrganizationUoWFactory) Create() commands.OrganizationUoW {
	return f()
}

type FuncHiringUoWFactory func() commands.HiringUoW

func (f FuncHiringUoWFactory) Create() commands.HiringUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
