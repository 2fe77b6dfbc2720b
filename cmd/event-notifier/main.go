package main

import (
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/notifier/client/mail"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/db/mongodb"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	l := log.GetLogger()
	l.Info("Starting event notifier")
	db := mongodb.New()
	if err := db.Connect(); err != nil {
		l.Fatal("Error connecting to MongoDB", zap.Error(err))
	}
	defer db.Disconnect()
	mailClient := mail.New()
	notifier(db, mailClient)
}
