package main

import (
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var log *logrus.Logger

	rootCmd := &cobra.Command{
		Use:           "slotcheck",
		Short:         "Compute and validate appointment slots from a schedule snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configured := logger.NewLogrusLogger(constvars.AppEnvDevelopment, logLevel, cmd.ErrOrStderr())
			log.SetOutput(configured.Out)
			log.SetFormatter(configured.Formatter)
			log.SetLevel(configured.GetLevel())
		},
	}
	log = logrus.New()
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("snapshot", "", "path to a JSON snapshot of schedule, capacity and appointments")
	_ = rootCmd.MarkPersistentFlagRequired("snapshot")

	rootCmd.AddCommand(slotsCmd(log))
	rootCmd.AddCommand(validateCmd(log))
	return rootCmd
}

func slotsCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Print the bookable slots for the snapshot date",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("snapshot")
			snapshot, err := loadSnapshot(path)
			if err != nil {
				log.WithError(err).Error("Failed to load snapshot")
				return err
			}

			result, err := computeSlots(snapshot)
			if err != nil {
				log.WithError(err).Error("Failed to compute slots")
				return err
			}
			log.WithFields(logrus.Fields{
				constvars.LoggingDoctorIDKey:  snapshot.DoctorID,
				constvars.LoggingDateKey:      snapshot.Date,
				constvars.LoggingSlotCountKey: len(result.Slots),
			}).Debug("Slots computed")
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}

func validateCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a requested time against the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("snapshot")
			clock, _ := cmd.Flags().GetString("time")
			duration, _ := cmd.Flags().GetInt("duration")

			snapshot, err := loadSnapshot(path)
			if err != nil {
				log.WithError(err).Error("Failed to load snapshot")
				return err
			}

			verdict, err := validateSnapshot(snapshot, clock, duration)
			if err != nil {
				log.WithError(err).Error("Failed to validate booking")
				return err
			}
			log.WithFields(logrus.Fields{
				constvars.LoggingTimeKey:       clock,
				constvars.LoggingReasonCodeKey: verdict.ReasonCode,
			}).Debug("Booking validated")
			return writeJSON(cmd.OutOrStdout(), verdict)
		},
	}
	cmd.Flags().String("time", "", "requested start time, HH:mm or HH:mm:ss")
	cmd.Flags().Int("duration", 0, "duration in minutes, defaults to the session duration")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
