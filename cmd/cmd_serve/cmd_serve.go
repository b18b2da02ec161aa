// file: radixmap/cmd/cmd_serve/cmd_serve.go
package cmd_serve

import (
	"net/http"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/maatini/radixmap/busapi"
	"github.com/maatini/radixmap/config"
	"github.com/maatini/radixmap/dataset"
	"github.com/maatini/radixmap/httpapi"
	"github.com/maatini/radixmap/logger"
	"github.com/maatini/radixmap/radix"
	"github.com/maatini/radixmap/store"
)

var configPath string

// Cmd serves the dataset over HTTP and, if reachable, a NATS bus.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a radix map over HTTP and NATS",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		// DevMode forces the colorized console writer even when stderr
		// isn't a terminal (e.g. under a supervisor that captures it to
		// a file), trading the structured JSON a production run wants
		// for something easier to read by eye.
		log := logger.NewZerologLogger(cfg.ServiceName, cfg.LogLevel, "", cfg.DevMode)

		reload := func() (httpapi.Lookuper, error) {
			s, err := store.Open(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return nil, err
			}
			defer s.Close()

			records, err := s.Load()
			if err != nil {
				return nil, err
			}

			var opts []radix.Option
			if cfg.QueryOnlyExistingKeys {
				opts = append(opts, radix.WithAssumeExistingKeys())
			}

			m, err := radix.New(dataset.ToEntries(dataset.FromStoreRecords(records)), opts...)
			if err != nil {
				return nil, err
			}
			return httpapi.StringMap{M: m}, nil
		}

		initial, err := reload()
		if err != nil {
			return err
		}
		log.Info("loaded dataset with %d entries", initial.Len())

		httpSrv := httpapi.New([]byte(cfg.JWTSecret), initial, reload)

		if nc, err := nats.Connect(cfg.BusAddr); err == nil {
			responder := busapi.NewResponder(nc, initial)
			if err := responder.Start(); err != nil {
				log.Warn("bus responder not started: %v", err)
			} else {
				log.Info("bus responder listening on %s", busapi.LookupSubject)
				defer responder.Stop()
				defer nc.Close()
			}
		} else {
			log.Warn("bus unreachable at %s, serving HTTP only: %v", cfg.BusAddr, err)
		}

		log.Info("http listening on %s", cfg.HTTPAddr)
		return http.ListenAndServe(cfg.HTTPAddr, httpSrv.Router())
	},
}

func init() {
	Cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON config file")
}
