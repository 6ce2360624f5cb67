// clinicctl is the operator CLI: it works directly against the configured
// storage backend, without a running API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dmehra/clinicdesk/internal/config"
	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/stats"
	"github.com/dmehra/clinicdesk/internal/storage"
	"github.com/dmehra/clinicdesk/internal/store"
	"github.com/dmehra/clinicdesk/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:          "clinicctl",
		Short:        "Operate on clinicdesk state storage",
		SilenceUsage: true,
	}

	root.AddCommand(seedCmd(), exportCmd(), statsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStorage(ctx context.Context) (storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(logger.Config{Level: "warn", Pretty: true})
	return storage.Open(ctx, cfg.StorageOptions())
}

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate empty storage with the bundled datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if force {
				for _, key := range []string{store.DoctorsKey, store.ServicesKey, store.AppointmentsKey} {
					if err := st.Delete(ctx, key); err != nil {
						return err
					}
				}
				log.Warn().Msg("existing state wiped")
			}

			// Constructing the containers seeds any empty key.
			if _, err := store.NewDoctorDirectory(ctx, st); err != nil {
				return err
			}
			if _, err := store.NewServiceCatalog(ctx, st); err != nil {
				return err
			}
			if _, err := store.NewAppointmentLedger(ctx, st); err != nil {
				return err
			}

			fmt.Println("storage seeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "wipe existing state before seeding")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print all state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			doctors, services, appointments, err := loadAll(ctx, st)
			if err != nil {
				return err
			}

			out := map[string]interface{}{
				"doctors":      doctors,
				"services":     services,
				"appointments": appointments,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			doctors, services, appointments, err := loadAll(ctx, st)
			if err != nil {
				return err
			}

			out := map[string]interface{}{
				"overview": stats.Overview(appointments),
				"doctors":  stats.PerDoctor(doctors, appointments),
				"services": stats.PerService(services, appointments),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func loadAll(ctx context.Context, st storage.Store) ([]model.Doctor, []model.Service, []model.Appointment, error) {
	directory, err := store.NewDoctorDirectory(ctx, st)
	if err != nil {
		return nil, nil, nil, err
	}
	catalog, err := store.NewServiceCatalog(ctx, st)
	if err != nil {
		return nil, nil, nil, err
	}
	ledger, err := store.NewAppointmentLedger(ctx, st)
	if err != nil {
		return nil, nil, nil, err
	}
	return directory.List(), catalog.List(), ledger.List(), nil
}
