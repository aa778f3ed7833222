package cmd

import (
	"context"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/webmux/wacloud/webhooks"
	"github.com/webmux/wacloud/whatsapp"
)

func init() {
	Register(&cli.Command{
		Name:  "serve",
		Usage: "Run the webhook listener",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen `address`",
				Value:   ":8080",
				EnvVars: []string{"WACLOUD_ADDR"},
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "webhook endpoint `path`",
				Value: "/webhook",
			},
			&cli.Int64Flag{
				Name:  "max-body",
				Usage: "request body limit, `bytes`",
				Value: 1 << 20, // 1MB
			},
		},
		Action: serve,
	})
}

type webhookServer struct {
	log         zerolog.Logger
	appSecret   string
	verifyToken string
	maxBody     int64
}

func serve(c *cli.Context) error {

	log, err := console(c)
	if err != nil {
		return err
	}

	profile, err := loadProfile(c)
	if err != nil {
		return err
	}

	srv := &webhookServer{
		log:         *log,
		appSecret:   profile.AppSecret,
		verifyToken: profile.VerifyToken,
		maxBody:     c.Int64("max-body"),
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	endpoint := c.String("path")
	router.Get(endpoint, srv.subscribe)
	router.Post(endpoint, srv.notify)

	server := &http.Server{
		Addr:              c.String("addr"),
		Handler:           router,
		ReadHeaderTimeout: time.Second * 5,
	}

	ctx, stop := signal.NotifyContext(
		c.Context, syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	errC := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("path", endpoint).
			Msg("webhook: listening")
		errC <- server.ListenAndServe()
	}()

	select {
	case err = <-errC:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("webhook: shutting down")
	shutdown, cancel := context.WithTimeout(
		context.Background(), time.Second*10,
	)
	defer cancel()
	return server.Shutdown(shutdown)
}

// subscribe answers the platform's one-time endpoint verification.
// https://developers.facebook.com/docs/graph-api/webhooks/getting-started#verification-requests
func (srv *webhookServer) subscribe(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	if query.Get("hub.mode") != "subscribe" ||
		query.Get("hub.verify_token") != srv.verifyToken {
		srv.log.Warn().Msg("webhook: subscribe verification failed")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(query.Get("hub.challenge")))
}

// notify handles webhook event notifications.
// The signature digest is calculated over the raw body bytes
// as they stream through the event reader.
func (srv *webhookServer) notify(w http.ResponseWriter, r *http.Request) {

	if srv.appSecret == "" {
		srv.log.Error().Err(webhooks.ErrSecretMissing).
			Msg("webhook: app secret is not configured")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, srv.maxBody)
	stream, err := webhooks.EventReader([]byte(srv.appSecret), r)
	if err != nil {
		srv.log.Warn().Err(err).Msg("webhook: signature verification failed")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(stream)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	// Close drains the remainder and checks the digest.
	if err = stream.Close(); err != nil {
		srv.log.Warn().Err(err).Msg("webhook: signature verification failed")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	event, err := webhooks.ParseEvent(body)
	if err != nil {
		// Acknowledge anyway; the platform retries otherwise.
		srv.log.Warn().Err(err).Msg("webhook: malformed event")
		w.WriteHeader(http.StatusOK)
		return
	}

	srv.dispatch(event)
	w.WriteHeader(http.StatusOK)
}

func (srv *webhookServer) dispatch(event *webhooks.Event) {

	e := webhooks.Classify(event)
	switch e.Kind {
	case webhooks.KindMessage:
		for _, message := range e.Value.Messages {
			log := srv.log.Info().
				Str("from", message.From).
				Str("wamid", message.ID).
				Str("kind", string(message.Kind())).
				Time("date", message.Time())
			if sender := e.Value.GetContact(message.From); sender != nil {
				log = log.Str("name", sender.GetName())
			}
			if mediaID, ok := message.MediaID(); ok {
				log = log.Str("media", mediaID)
			}
			if message.Kind() == whatsapp.KindText {
				log = log.Str("text", message.Text.Body)
			}
			log.Msg("webhook: message")
		}
		for _, err := range e.Value.Errors {
			srv.log.Warn().
				Int("code", err.Code).
				Str("error", err.Message).
				Msg("webhook: message error")
		}
	case webhooks.KindStatus:
		for _, status := range e.Value.Statuses {
			srv.log.Info().
				Str("wamid", status.MessageID).
				Str("recipient", status.RecipientID).
				Str("status", string(status.Status)).
				Msg("webhook: status")
		}
	case webhooks.KindCall:
		for _, call := range e.Value.Calls {
			srv.log.Info().
				Str("wacid", call.ID).
				Str("from", call.From).
				Str("event", call.Event).
				Msg("webhook: call")
		}
	default:
		srv.log.Debug().
			Str("object", event.Object).
			Msg("webhook: unknown notification")
	}
}
