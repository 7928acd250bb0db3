package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/configs"
	"github.com/serdvr66/orderQPro/mockapi"
	"github.com/serdvr66/orderQPro/pkg/session"
	"github.com/serdvr66/orderQPro/repository"
	"github.com/serdvr66/orderQPro/services"
)

func main() {
	mock := flag.Bool("mock", false, "serve the in-memory stand-in backend instead of monitoring")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	cfg := configs.LoadConfig()

	if *mock {
		runMock(cfg, log)
		return
	}
	runMonitor(cfg, log)
}

func runMock(cfg *configs.Config, log zerolog.Logger) {
	srv := mockapi.New(cfg.JWTSecret, cfg.JWTTTL)

	// a little guest traffic so the board has something to show
	go func() {
		time.Sleep(5 * time.Second)
		srv.PlaceGuestOrder("T1", "Pizza Margherita", "8.50")
		srv.CallWaiter("T2", "Bitte Speisekarte")
	}()

	log.Info().Str("addr", cfg.MockAddr).
		Str("email", mockapi.StaffEmail).
		Msg("stand-in backend listening")
	if err := srv.Router().Run(cfg.MockAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func runMonitor(cfg *configs.Config, log zerolog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := configs.OpenSessionDB(cfg.SessionDB)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open session store")
	}
	repo := repository.NewSessionRepository(db)
	if cfg.DeviceID == "" {
		id, err := repo.DeviceID()
		if err != nil {
			log.Fatal().Err(err).Msg("could not resolve device identity")
		}
		cfg.DeviceID = id
	}
	sess := session.New()
	client := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout, sess, log)
	auth := services.NewAuthService(client, sess, repo, cfg, log)

	if !auth.Restore() {
		email := os.Getenv("ORDERQ_EMAIL")
		password := os.Getenv("ORDERQ_PASSWORD")
		if err := auth.Login(ctx, email, password); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
	}

	if token := os.Getenv("ORDERQ_PUSH_TOKEN"); token != "" {
		if err := auth.RegisterPushToken(ctx, token); err != nil {
			log.Warn().Err(err).Msg("push token registration failed")
		}
	}

	if stats, err := client.DashboardStats(ctx); err != nil {
		log.Warn().Err(err).Msg("could not fetch dashboard stats")
	} else {
		log.Info().
			Int("active_orders", stats.ActiveOrders).
			Int("occupied_tables", stats.OccupiedTables).
			Int("open_calls", stats.OpenCalls).
			Str("pending_revenue", stats.PendingRevenue.StringFixed(2)).
			Msg("dashboard")
	}

	orders := services.NewOrderService(client, log)
	calls := services.NewCallService(client, log)
	notifier := services.NewLogNotifier(log)
	poller := services.NewPoller(orders, calls, notifier,
		cfg.OrderPollInterval, cfg.CallPollInterval, log)

	log.Info().Str("base_url", cfg.BaseURL).Msg("monitoring order board")
	poller.Run(ctx)
	// the session stays on disk so the next start restores it
}
