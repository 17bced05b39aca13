package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	cartapp "github.com/wyfcoding/motoparts/internal/cart/application"
	cartdomain "github.com/wyfcoding/motoparts/internal/cart/domain"
	cartmemory "github.com/wyfcoding/motoparts/internal/cart/infrastructure/persistence/memory"
	cartmysql "github.com/wyfcoding/motoparts/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/wyfcoding/motoparts/internal/cart/interfaces/http"
	"github.com/wyfcoding/motoparts/internal/catalog"
	catalogapp "github.com/wyfcoding/motoparts/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/motoparts/internal/catalog/domain"
	catalogmemory "github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/memory"
	catalogmysql "github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/motoparts/internal/catalog/interfaces/http"
	orderapp "github.com/wyfcoding/motoparts/internal/order/application"
	orderdomain "github.com/wyfcoding/motoparts/internal/order/domain"
	"github.com/wyfcoding/motoparts/internal/order/infrastructure/messaging"
	ordermemory "github.com/wyfcoding/motoparts/internal/order/infrastructure/persistence/memory"
	ordermysql "github.com/wyfcoding/motoparts/internal/order/infrastructure/persistence/mysql"
	orderhttp "github.com/wyfcoding/motoparts/internal/order/interfaces/http"
	userdomain "github.com/wyfcoding/motoparts/internal/user/domain"
	usermemory "github.com/wyfcoding/motoparts/internal/user/infrastructure/persistence/memory"
	usermysql "github.com/wyfcoding/motoparts/internal/user/infrastructure/persistence/mysql"
	"github.com/wyfcoding/motoparts/pkg/cache"
	"github.com/wyfcoding/motoparts/pkg/config"
	"github.com/wyfcoding/motoparts/pkg/db"
	"github.com/wyfcoding/motoparts/pkg/logger"
	"github.com/wyfcoding/motoparts/pkg/metrics"
	"github.com/wyfcoding/motoparts/pkg/middleware"
	"github.com/wyfcoding/motoparts/pkg/mq"
	"github.com/wyfcoding/motoparts/pkg/ratelimit"
)

// repositories 按存储后端聚合的仓储集合
type repositories struct {
	categories   catalogdomain.CategoryRepository
	products     catalogdomain.ProductRepository
	testimonials catalogdomain.TestimonialRepository
	cartItems    cartdomain.CartItemRepository
	orders       orderdomain.OrderRepository
	users        userdomain.UserRepository
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	// 2. Logger
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}

	ctx := context.Background()

	// 3. Storage backend
	repos, closeDB, err := buildRepositories(cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
	}
	if closeDB != nil {
		defer closeDB()
	}

	// 4. Redis (optional: catalog cache + rate limiting)
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.New(cache.Config{
			Host:        cfg.Redis.Host,
			Port:        cfg.Redis.Port,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxPoolSize: cfg.Redis.MaxPoolSize,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to redis", "error", err)
		}
		defer redisCache.Close()
	}

	// 5. Seed data
	if cfg.Storage.Seed {
		if err := catalog.Seed(ctx, repos.categories, repos.products, repos.testimonials); err != nil {
			logger.Fatal(ctx, "Failed to seed catalog", "error", err)
		}
		seedAdminUser(ctx, repos.users)
	}

	// 6. Event publisher
	var publisher orderdomain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to create kafka producer", "error", err)
		}
		defer producer.Close()
		publisher = messaging.NewKafkaPublisher(producer)
	} else {
		publisher = messaging.NewLogPublisher()
	}

	// 7. Application services
	catalogService := catalogapp.NewService(repos.categories, repos.products, repos.testimonials)
	if redisCache != nil {
		catalogService = catalogService.WithCache(redisCache, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	}
	cartService := cartapp.NewService(repos.cartItems, repos.products)
	orderService := orderapp.NewService(repos.orders, cartService, publisher, cfg.Kafka.OrderTopic)

	// 8. HTTP server
	m := metrics.New("api")

	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.Instrument(m),
		cors.Default(),
	)
	if cfg.RateLimit.Enabled && redisCache != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisCache.Client())
		r.Use(middleware.RateLimit(limiter, cfg.RateLimit))
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, m.Handler())
	}

	api := r.Group("/api")
	cataloghttp.NewCatalogHandler(catalogService).RegisterRoutes(api)
	carthttp.NewCartHandler(cartService, m).RegisterRoutes(api)
	orderhttp.NewOrderHandler(orderService, m).RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// 9. Start
	go func() {
		logger.Info(ctx, "Starting HTTP server", "addr", httpSrv.Addr, "backend", cfg.Storage.Backend)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server failed", "error", err)
		}
	}()

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown failed", "error", err)
	}
	logger.Info(ctx, "Server exiting")
}

// buildRepositories 根据配置构建存储后端，返回仓储集合与数据库关闭函数
func buildRepositories(cfg *config.Config) (*repositories, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return &repositories{
			categories:   catalogmemory.NewCategoryRepository(),
			products:     catalogmemory.NewProductRepository(),
			testimonials: catalogmemory.NewTestimonialRepository(),
			cartItems:    cartmemory.NewCartItemRepository(),
			orders:       ordermemory.NewOrderRepository(),
			users:        usermemory.NewUserRepository(),
		}, nil, nil

	case config.BackendMySQL, config.BackendPostgres:
		database, err := db.Init(db.Config{
			Driver:             cfg.Storage.Backend,
			DSN:                cfg.Database.DSN,
			MaxOpenConns:       cfg.Database.MaxOpenConns,
			MaxIdleConns:       cfg.Database.MaxIdleConns,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			LogEnabled:         cfg.Database.LogEnabled,
			SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		})
		if err != nil {
			return nil, nil, err
		}

		if err := database.AutoMigrate(
			&catalogdomain.Category{},
			&catalogdomain.Product{},
			&catalogdomain.Testimonial{},
			&cartdomain.CartItem{},
			&orderdomain.Order{},
			&orderdomain.OrderItem{},
			&userdomain.User{},
		); err != nil {
			return nil, nil, fmt.Errorf("migrate db failed: %w", err)
		}

		return &repositories{
			categories:   catalogmysql.NewCategoryRepository(database.DB),
			products:     catalogmysql.NewProductRepository(database.DB),
			testimonials: catalogmysql.NewTestimonialRepository(database.DB),
			cartItems:    cartmysql.NewCartItemRepository(database.DB),
			orders:       ordermysql.NewOrderRepository(database.DB),
			users:        usermysql.NewUserRepository(database.DB),
		}, database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

// seedAdminUser 保证存在一个初始用户，已存在时跳过
func seedAdminUser(ctx context.Context, users userdomain.UserRepository) {
	if _, err := users.GetByUsername(ctx, "admin"); err == nil {
		return
	}
	logger.Info(ctx, "Seeding admin user")
	if err := users.Save(ctx, &userdomain.User{Username: "admin", Password: "admin"}); err != nil {
		logger.Warn(ctx, "Failed to seed admin user", "error", err)
	}
}
