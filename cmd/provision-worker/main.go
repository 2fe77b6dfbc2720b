package main

import (
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/provision"
	refdatamongo "github.com/ProjectReef/reef/internal/pkg/provision/refdata/mongodb"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db/mongodb"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"

	_ "github.com/joho/godotenv/autoload"
)

var (
	interval    = 2 * time.Minute
	insecureTLS = false
)

func initFlags() {
	flag.DurationVar(&interval, "interval", 2*time.Minute, "how often to advance in-flight services")
	flag.BoolVar(&insecureTLS, "engine-insecure-tls", false, "disable TLS verification towards the orchestration engine")

	flag.Parse()
}

func main() {
	l := log.GetLogger()
	l.Info("Starting provision worker")
	initFlags()

	db := mongodb.New()
	if err := db.Connect(); err != nil {
		l.Fatal("Error connecting to MongoDB", zap.Error(err))
	}
	defer db.Disconnect()

	resolver := refdatamongo.New(db.(*mongodb.MongoDB).Database)
	coordinator := provision.NewCoordinator(provision.CoordinatorConfig{
		DB:                 db,
		Resolver:           resolver,
		InsecureSkipVerify: insecureTLS,
	})

	worker(db, coordinator, interval)
}
