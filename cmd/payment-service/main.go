package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streetmarket/payment-service/internal/app/background"
	"github.com/streetmarket/payment-service/internal/config"
	httpdelivery "github.com/streetmarket/payment-service/internal/delivery/http"
	"github.com/streetmarket/payment-service/internal/delivery/http/handlers"
	publisher "github.com/streetmarket/payment-service/internal/infrastructure/kafka"
	"github.com/streetmarket/payment-service/internal/infrastructure/metrics"
	"github.com/streetmarket/payment-service/internal/infrastructure/migrate"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/repository"
	"github.com/streetmarket/payment-service/internal/infrastructure/storefront"
	"github.com/streetmarket/payment-service/internal/infrastructure/yookassa"
	"github.com/streetmarket/payment-service/internal/usecase/payment"
	"github.com/streetmarket/payment-service/internal/usecase/pricing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.PaymentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repos
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	discountRepo := repository.NewDefaultDiscountRepository(db)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer kafkaPublisher.Close()

	// Init metrics
	paymentMetrics := metrics.NewPaymentMetrics(prometheus.DefaultRegisterer)

	// Init gateway and buyer directory clients
	gateway := yookassa.NewClient(cfg.Yookassa)
	buyers := storefront.NewHTTPBuyerClient(cfg.UserService.BaseURL, cfg.UserService.Timeout)

	// Init usecases
	pricingUsecase := pricing.NewDefaultPricingUsecase(productRepo)
	paymentUsecase := payment.NewDefaultPaymentUsecase(
		paymentRepo,
		pricingUsecase,
		buyers,
		gateway,
		kafkaPublisher,
		paymentMetrics,
		cfg.DeliveryWindow,
		cfg.Yookassa.Currency,
	)

	// Start maintenance sweeps
	tasks := background.NewMaintenanceTasks(paymentRepo, discountRepo, cfg.Maintenance)
	tasks.StartAll(context.Background())

	// Start HTTP server
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	router := httpdelivery.NewRouter(paymentHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("payment-service listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to run http server: %v", err)
	}
}
