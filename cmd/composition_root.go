package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/kafka"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/jobs"
	"shiptrack/internal/pkg/auth"
)

// CompositionRoot wires infrastructure into application handlers.
// All dependency construction for the service happens here.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	tokenIssuer auth.TokenIssuer
	publisher   ports.EventPublisher
}

// NewCompositionRoot builds the dependency graph from configuration.
// The Kafka publisher is optional: with no broker configured, status-changed
// events are simply not emitted.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokenIssuer, err := auth.NewTokenIssuer(config.JwtSecret, 24*time.Hour)
	if err != nil {
		return CompositionRoot{}, err
	}

	var publisher ports.EventPublisher
	if config.KafkaHost != "" && config.KafkaStatusChangedTopic != "" {
		publisher = kafka.NewStatusChangedProducer(config.KafkaHost, config.KafkaStatusChangedTopic)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenIssuer: tokenIssuer,
		publisher:   publisher,
	}, nil
}

// Close releases infrastructure resources held by the root.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateRequestPickupCommandHandler() commands.RequestPickupCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByRoleQueryHandler() queries.GetOrdersByRoleQueryHandler {
	return queries.NewGetOrdersByRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignableAgentsQueryHandler() queries.GetAssignableAgentsQueryHandler {
	return queries.NewGetAssignableAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo-facing server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.tokenIssuer,
		c.CreateRequestPickupCommandHandler(),
		c.CreateTransitionShipmentCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateAuthenticateUserQueryHandler(),
		c.CreateGetOrdersByRoleQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetAssignableAgentsQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
