package main

import (
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/provision"
	refdatamongo "github.com/ProjectReef/reef/internal/pkg/provision/refdata/mongodb"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db/mongodb"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/router"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/services"

	_ "github.com/joho/godotenv/autoload"
)

var (
	servicePort = "8000"
	insecureTLS = false
)

func initFlags() {
	flag.StringVar(&servicePort, "port", "8000", "port to run the service on")
	flag.BoolVar(&insecureTLS, "engine-insecure-tls", false, "disable TLS verification towards the orchestration engine")

	flag.Parse()
}

func main() {
	logger := log.GetLogger()
	logger.Info("Starting Reef server...")
	initFlags()

	logger.Info("Attempting to connect to MongoDB...")
	db := mongodb.New()
	if err := db.Connect(); err != nil {
		panic(err)
	}

	defer func() {
		if err := db.Disconnect(); err != nil {
			panic(err)
		}
	}()
	services.SetDB(db)

	resolver := refdatamongo.New(db.(*mongodb.MongoDB).Database)
	services.SetCoordinator(provision.NewCoordinator(provision.CoordinatorConfig{
		DB:                 db,
		Resolver:           resolver,
		InsecureSkipVerify: insecureTLS,
	}))

	var appRouter = router.CreateRouter()
	logger.Info("Reef server is up and running", zap.String("port", servicePort))
	logger.Fatal("Error encountered while routing", zap.Error(appRouter.Run(":"+servicePort)))
}
