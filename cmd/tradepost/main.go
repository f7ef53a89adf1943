package main

import (
	"log"

	"tradepost/internal/config"
	"tradepost/internal/domain"
	apphttp "tradepost/internal/http"
	"tradepost/internal/notify"
	"tradepost/internal/services"
	"tradepost/internal/store"
)

func main() {
	cfg := config.Load()

	kv, err := store.OpenKV(cfg.KVDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

	dispatcher := notify.NewDispatcher(notify.LogSender{})

	catalog := store.NewCatalog(dispatcher)
	store.Seed(catalog)

	// Email channel gets real SMTP delivery when configured; everything
	// else stays on the log sender.
	if cfg.SMTPHost != "" {
		mailer, err := notify.NewMailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
			func(recipientID int64) (string, bool) {
				s, err := catalog.GetSeller(recipientID)
				if err != nil {
					return "", false
				}
				return s.Email, true
			})
		if err != nil {
			log.Printf("[warn] smtp sender disabled: %v", err)
		} else {
			dispatcher.ByChannel[domain.ChannelEmail] = mailer
		}
	}

	auth := services.NewAuthService(kv)

	app := apphttp.NewApp(catalog, kv, cfg, auth)
	log.Fatal(app.Listen(":" + cfg.Port))
}
