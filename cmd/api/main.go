package main

import (
	"context"

	bookinghandler "github.com/JensIssa/HotelBooking-Clean/internal/bookings/handler"
	bookingservice "github.com/JensIssa/HotelBooking-Clean/internal/bookings/service"
	"github.com/JensIssa/HotelBooking-Clean/internal/bookings/validator"
	customerhandler "github.com/JensIssa/HotelBooking-Clean/internal/customers/handler"
	customerservice "github.com/JensIssa/HotelBooking-Clean/internal/customers/service"
	"github.com/JensIssa/HotelBooking-Clean/internal/events"
	roomhandler "github.com/JensIssa/HotelBooking-Clean/internal/rooms/handler"
	roomservice "github.com/JensIssa/HotelBooking-Clean/internal/rooms/service"
	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	"github.com/JensIssa/HotelBooking-Clean/internal/storage/memory"
	"github.com/JensIssa/HotelBooking-Clean/internal/storage/mongodb"
	"github.com/JensIssa/HotelBooking-Clean/pkg/app"
	"github.com/JensIssa/HotelBooking-Clean/pkg/config"
	"github.com/JensIssa/HotelBooking-Clean/pkg/contracts"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

const ServiceName = "hotelbooking-api"

type stores struct {
	bookings  storage.Repository[*model.Booking]
	rooms     storage.Repository[*model.Room]
	customers storage.Repository[*model.Customer]
	locker    storage.Locker
}

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	cfg.Log.Info("Starting HotelBooking API")

	st := initStorage(cfg)

	if cfg.SeedDemoData {
		if err := storage.Seed(context.Background(), st.rooms, st.customers, st.bookings); err != nil {
			cfg.Log.Fatal("Failed to seed demo data", "error", err)
		}
		cfg.Log.Info("Demo data seeded")
	}

	publisher := initPublisher(cfg)

	bookingSvc := bookingservice.NewBookingService(
		st.bookings,
		st.rooms,
		st.locker,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)
	roomSvc := roomservice.NewRoomService(st.rooms)
	customerSvc := customerservice.NewCustomerService(st.customers)

	handlers := []contracts.Handler{
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		roomhandler.NewRoomHandler(roomSvc, cfg.Log),
		customerhandler.NewCustomerHandler(customerSvc, cfg.Log),
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
		if cfg.Client.Mongo != nil {
			cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
		}
	})
	serverApp.Run()
}

func initStorage(cfg *config.Config) stores {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		cfg.Log.Info("Using in-memory storage")
		return stores{
			bookings: memory.NewRepository[*model.Booking](func(b *model.Booking) *model.Booking {
				c := *b
				return &c
			}),
			rooms: memory.NewRepository[*model.Room](func(r *model.Room) *model.Room {
				c := *r
				return &c
			}),
			customers: memory.NewRepository[*model.Customer](func(c *model.Customer) *model.Customer {
				cp := *c
				return &cp
			}),
			locker: memory.NewLocker(),
		}

	case config.StorageDriverMongoDB:
		cfg.SetMongo()
		cfg.Log.Info("Using MongoDB storage", "database", cfg.MongoDatabaseName)
		return stores{
			bookings:  mongodb.NewRepository(cfg, "Bookings", func() *model.Booking { return &model.Booking{} }),
			rooms:     mongodb.NewRepository(cfg, "Rooms", func() *model.Room { return &model.Room{} }),
			customers: mongodb.NewRepository(cfg, "Customers", func() *model.Customer { return &model.Customer{} }),
			locker:    mongodb.NewLocker(cfg),
		}

	default:
		cfg.Log.Fatal("Unknown storage driver", "driver", cfg.StorageDriver)
		return stores{}
	}
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewKafkaPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}
	return publisher
}
