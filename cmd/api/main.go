package main

import (
	"os"

	"pokebase/internal/config"
	"pokebase/internal/domain/model"
	"pokebase/internal/handler"
	"pokebase/internal/infra/db"
	infraRepo "pokebase/internal/infra/repository"
	"pokebase/internal/server"
	"pokebase/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Card{},
		&model.GradingCompany{},
		&model.Listing{},
		&model.GradeSlab{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	cardRepo := infraRepo.NewCardGormRepository(gormDB)
	listingRepo := infraRepo.NewListingGormRepository(gormDB)
	companyRepo := infraRepo.NewGradingCompanyGormRepository(gormDB)
	slabRepo := infraRepo.NewGradeSlabGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	resetRepo := infraRepo.NewResetGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//税ポリシー（TAX_RATEが空なら税ゼロ）
	taxPolicy := usecase.ZeroTax
	if cfg.TaxRate != "" {
		rate, err := decimal.NewFromString(cfg.TaxRate)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid TAX_RATE")
		}
		taxPolicy = usecase.RateTax(rate)
	}

	//Usecase生成
	totalsUC := usecase.NewOrderTotalsUsecase(orderRepo, orderItemRepo, taxPolicy)
	customerUC := usecase.NewCustomerUsecase(customerRepo, orderRepo)
	cardUC := usecase.NewCardUsecase(cardRepo, txManager, totalsUC)
	listingUC := usecase.NewListingUsecase(listingRepo, cardRepo, txManager, totalsUC)
	companyUC := usecase.NewGradingCompanyUsecase(companyRepo)
	slabUC := usecase.NewGradeSlabUsecase(slabRepo, listingRepo, companyRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, customerRepo, txManager)
	orderItemUC := usecase.NewOrderItemUsecase(orderItemRepo, orderRepo, listingRepo, totalsUC)
	resetUC := usecase.NewResetUsecase(resetRepo)

	//Handler生成
	handlers := server.Handlers{
		Reset:            handler.NewResetHandler(resetUC),
		Customers:        handler.NewCustomerHandler(customerUC),
		Cards:            handler.NewCardHandler(cardUC),
		Listings:         handler.NewListingHandler(listingUC, slabUC),
		GradingCompanies: handler.NewGradingCompanyHandler(companyUC),
		GradeSlabs:       handler.NewGradeSlabHandler(slabUC),
		Orders:           handler.NewOrderHandler(orderUC),
		OrderItems:       handler.NewOrderItemHandler(orderItemUC),
	}

	//Server起動
	e := server.New(logger, handlers)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("starting api server")
	if err := server.Start(e, addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
