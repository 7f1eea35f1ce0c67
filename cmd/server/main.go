package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"pokertrainer-server/internal/config"
	"pokertrainer-server/internal/mux"
	"pokertrainer-server/pkg/db"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/session"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	assembler, err := puzzle.New(cfg.Puzzle)
	if err != nil {
		logrus.WithError(err).Fatal("invalid puzzle configuration")
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	sessions := session.NewManager(newStore(cfg), assembler)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, assembler, sessions, cfg.Drill.NextPuzzleDelay))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newStore returns a Postgres store when a DSN is configured, otherwise sessions live in memory
func newStore(cfg config.Config) session.Store {
	if cfg.PGDSN == "" {
		logrus.Info("pgDsn is not configured, sessions are kept in memory")
		return session.NewMemoryStore()
	}

	dbh, err := db.WaitForDB(cfg.PGDSN, time.Second*10)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	// run the db migrations
	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return session.NewPostgresStore(dbh)
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	logrus.SetLevel(config.Instance().LogLevel())

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
