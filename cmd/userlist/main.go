package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/screenkit"
	"github.com/dmitrymomot/screenkit/pkg/config"
	"github.com/dmitrymomot/screenkit/pkg/httpserver"
	"github.com/dmitrymomot/screenkit/pkg/logger"
	"github.com/dmitrymomot/screenkit/pkg/screenstate"
	"github.com/dmitrymomot/screenkit/pkg/userapi"
	"github.com/dmitrymomot/screenkit/ui"
)

type appConfig struct {
	Addr            string        `env:"USERLIST_ADDR" envDefault:":8080"`
	Endpoint        string        `env:"USERLIST_USERS_ENDPOINT" envDefault:"https://api.github.com/users"`
	FetchTimeout    time.Duration `env:"USERLIST_FETCH_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"USERLIST_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Environment     string        `env:"USERLIST_ENV" envDefault:"development"`
	LogLevel        string        `env:"USERLIST_LOG_LEVEL"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	logOpts := []logger.Option{logger.WithEnvironment(cfg.Environment, "userlist")}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			panic("invalid USERLIST_LOG_LEVEL: " + cfg.LogLevel)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}

	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	client := userapi.NewClient(
		userapi.WithEndpoint(cfg.Endpoint),
		userapi.WithTimeout(cfg.FetchTimeout),
	)

	vm := screenstate.NewViewModel(client.FetchUsers,
		screenstate.WithLogger(log),
		screenstate.WithFetchTimeout(cfg.FetchTimeout),
	)
	defer vm.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", screenkit.Wrap(func(_ *http.Request) screenkit.Response {
		return screenkit.Templ(ui.Page(vm.Current()))
	}))
	r.Post("/fetch", screenkit.Wrap(func(req *http.Request) screenkit.Response {
		vm.TriggerFetch(req.Context())
		return screenkit.Empty(http.StatusNoContent)
	}))
	r.Get("/updates", updatesHandler(vm, log))
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))

	// The screen mounts with a fetch already in flight; the page and the
	// update stream pick up whatever state it has reached.
	vm.TriggerFetch(ctx)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithReadTimeout(10*time.Second),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, r)
}

// updatesHandler streams every state change to the browser as a patch of
// the screen element, starting with the current state.
func updatesHandler(vm *screenstate.ViewModel[[]userapi.User], log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !screenkit.IsDataStar(r) {
			http.Error(w, "update stream requires a DataStar connection", http.StatusBadRequest)
			return
		}

		sse := screenkit.Stream(w, r)
		l := log.With(
			logger.Component("updates"),
			slog.String("conn_id", uuid.NewString()),
		)

		sub := vm.Subscribe(r.Context())
		defer sub.Close()
		l.InfoContext(r.Context(), "screen observer connected")

		for {
			select {
			case <-r.Context().Done():
				l.InfoContext(r.Context(), "screen observer disconnected")
				return
			case state, ok := <-sub.Updates():
				if !ok {
					l.InfoContext(r.Context(), "state store closed")
					return
				}
				if err := sse.PatchElementTempl(ui.Screen(state), screenkit.WithTarget(ui.ScreenSelector)); err != nil {
					l.ErrorContext(r.Context(), "failed to push screen patch", logger.Error(err))
					return
				}
				l.DebugContext(r.Context(), "screen patch pushed", logger.Phase(state.Phase()))
			}
		}
	}
}
