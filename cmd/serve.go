package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/Lulu77Donc/reggie-take-out/configs"
	"github.com/Lulu77Donc/reggie-take-out/controllers"
	"github.com/Lulu77Donc/reggie-take-out/events"
	"github.com/Lulu77Donc/reggie-take-out/middlewares"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/routes"
	"github.com/Lulu77Donc/reggie-take-out/services"
	"github.com/Lulu77Donc/reggie-take-out/session"
	"github.com/Lulu77Donc/reggie-take-out/storage"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

const dishCacheTTL = time.Hour

func serveCmd() *cobra.Command {
	var skipMigrate bool
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, skipMigrate)
		},
	}
	c.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate and seed on start")
	return c
}

func serve(ctx context.Context, skipMigrate bool) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !skipMigrate {
		if err := migrateAndSeed(ctx, db, cfg); err != nil {
			return err
		}
	}

	rdb, err := configs.ConnectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	files, err := storage.New(cfg)
	if err != nil {
		return err
	}
	ids, err := utils.NewSnowflake(cfg.NodeID)
	if err != nil {
		return errors.Wrap(err, "id generator")
	}

	hub := events.NewHub()
	pubs := []events.Publisher{hub}
	if kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic); kp != nil {
		defer kp.Close()
		pubs = append(pubs, kp)
	}
	notifier := events.NewNotifier(pubs...)
	defer notifier.Wait()

	tokens := services.NewTokenIssuer(session.NewStore(rdb, cfg.JWTTTL), cfg.JWTSecret, cfg.JWTTTL)
	dishCache := services.NewDishCache(rdb, dishCacheTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := gin.New()
	r.Use(middlewares.Recovery(), middlewares.AccessLog(), middlewares.CORSMiddleware(), middlewares.NewMetrics(reg).Handler())
	routes.RegisterRoutes(r, routes.Handlers{
		Auth:        tokens,
		Employee:    controllers.NewEmployeeController(services.NewEmployeeService(db, tokens)),
		Category:    controllers.NewCategoryController(services.NewCategoryService(db, dishCache)),
		Dish:        controllers.NewDishController(services.NewDishService(db, dishCache)),
		Setmeal:     controllers.NewSetmealController(services.NewSetmealService(db)),
		Order:       controllers.NewOrderController(services.NewOrderService(db, ids, notifier)),
		Common:      controllers.NewCommonController(services.NewFileService(files)),
		User:        controllers.NewUserController(services.NewUserService(db, tokens)),
		AddressBook: controllers.NewAddressBookController(services.NewAddressBookService(db)),
		Cart:        controllers.NewCartController(services.NewCartService(db)),
		Hub:         hub,
		Gatherer:    reg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.S().Infow("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}
	logger.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
