package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/base/ratelimit"
	bValidator "github.com/holdergate/goapi/base/validator"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/collection"
	"github.com/holdergate/goapi/domain/keys"
	"github.com/holdergate/goapi/domain/verification"
	mmiddleware "github.com/holdergate/goapi/middleware"
	"github.com/holdergate/goapi/service/cache"
	"github.com/holdergate/goapi/service/cache/provider/primitive"
	"github.com/holdergate/goapi/service/delegateregistry"
	"github.com/holdergate/goapi/service/providers"
	"github.com/holdergate/goapi/service/providers/alchemy"
	"github.com/holdergate/goapi/service/providers/etherscan"
	"github.com/holdergate/goapi/service/providers/moralis"
	collection_repository "github.com/holdergate/goapi/stores/collection/repository"
	delegation_usecase "github.com/holdergate/goapi/stores/delegation/usecase"
	hc_delivery "github.com/holdergate/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/holdergate/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/holdergate/goapi/stores/healthcheck/usecase"
	ownership_usecase "github.com/holdergate/goapi/stores/ownership/usecase"
	verification_delivery "github.com/holdergate/goapi/stores/verification/delivery/http"
	verification_repository "github.com/holdergate/goapi/stores/verification/repository"
	verification_usecase "github.com/holdergate/goapi/stores/verification/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init in-process cache
	context.Info("init cache")
	cacheProvider := primitive.NewPrimitive("verification", viper.GetInt("cache.sizeMb"))

	verificationTtl := viper.GetDuration("verification.cacheTtl")
	// entries outlive their logical expiry so a stale copy can be served
	// when every provider is down
	staleTtl := viper.GetDuration("verification.staleTtl")
	verificationCache := cache.New(cache.ServiceConfig{
		Ttl:   staleTtl,
		Pfx:   keys.PfxVerification,
		Cache: cacheProvider,
	})
	discoveryCache := cache.New(cache.ServiceConfig{
		Ttl:   verificationTtl,
		Pfx:   keys.PfxDelegations,
		Cache: cacheProvider,
	})

	// init provider clients
	httpTimeout := viper.GetDuration("http.timeout")
	alchemyClient := alchemy.NewClient(&alchemy.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("providers.alchemy.baseUrl"),
		Apikey:     viper.GetString("providers.alchemy.apikey"),
	})
	moralisClient := moralis.NewClient(&moralis.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("providers.moralis.baseUrl"),
		Apikey:     viper.GetString("providers.moralis.apikey"),
		Chain:      viper.GetString("providers.moralis.chain"),
	})
	etherscanClient := etherscan.NewClient(&etherscan.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("providers.etherscan.baseUrl"),
		Apikey:     viper.GetString("providers.etherscan.apikey"),
	})
	registryClient := delegateregistry.NewClient(&delegateregistry.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("delegateRegistry.baseUrl"),
		Apikey:     viper.GetString("delegateRegistry.apikey"),
	})

	limiter := ratelimit.NewSlidingWindow(time.Second, viper.GetInt("ratelimit.requestsPerSecond"))
	chainPacer := ratelimit.NewPacer(viper.GetDuration("pacing.chainInterval"))
	checkPacer := ratelimit.NewPacer(viper.GetDuration("pacing.registryInterval"))

	// recognized collections and access tiers
	collectionsCfg := viper.Sub("collections")
	cols := []collection.Collection{}
	for k := range collectionsCfg.AllSettings() {
		cols = append(cols, collection.Collection{
			ChainId:   domain.ChainId(collectionsCfg.GetInt32(fmt.Sprintf("%s.chainId", k))),
			Address:   domain.Address(collectionsCfg.GetString(fmt.Sprintf("%s.address", k))).ToLower(),
			Name:      collectionsCfg.GetString(fmt.Sprintf("%s.name", k)),
			TokenType: domain.TokenType(collectionsCfg.GetInt(fmt.Sprintf("%s.tokenType", k))),
		})
	}
	tiersCfg := viper.Sub("tiers")
	tiers := []collection.TierRequirement{}
	for level := range tiersCfg.AllSettings() {
		minimums := map[domain.Address]int{}
		for addr := range tiersCfg.GetStringMap(level) {
			minimums[domain.Address(addr).ToLower()] = tiersCfg.GetInt(fmt.Sprintf("%s.%s", level, addr))
		}
		tiers = append(tiers, collection.TierRequirement{
			Level:    verification.AccessLevel(level),
			Minimums: minimums,
		})
	}
	collectionRegistry := collection_repository.NewRegistry(&collection_repository.RegistryCfg{
		Collections: cols,
		Tiers:       tiers,
	})

	// construct repository, usecase and delivery
	ownershipUsecase := ownership_usecase.New(&ownership_usecase.OwnershipUsecaseCfg{
		Providers:  []providers.Provider{alchemyClient, moralisClient, etherscanClient},
		Ledger:     etherscanClient,
		Registry:   collectionRegistry,
		Limiter:    limiter,
		ChainPacer: chainPacer,
	})
	delegationUsecase := delegation_usecase.New(&delegation_usecase.DelegationUsecaseCfg{
		Registry:       registryClient,
		Ownership:      ownershipUsecase,
		DiscoveryCache: discoveryCache,
		CheckPacer:     checkPacer,
	})
	verificationRepo := verification_repository.NewCacheRepo(verificationCache)
	verificationUsecase := verification_usecase.New(&verification_usecase.VerificationUsecaseCfg{
		Ownership:  ownershipUsecase,
		Delegation: delegationUsecase,
		Registry:   collectionRegistry,
		CacheRepo:  verificationRepo,
		ChainId:    domain.ChainId(viper.GetInt32("chainId")),
		CacheTtl:   verificationTtl,
	})
	hc := hc_usecase.New(hc_repo.New(cacheProvider))

	hc_delivery.New(e, hc)
	verification_delivery.New(e, verificationUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
