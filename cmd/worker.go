package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/timesheet-management/internal/core/events"
	"github.com/frahmantamala/timesheet-management/pkg/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
	Long:  `Start and manage background workers such as the event subscriber loop.`,
}

var eventWorkerCmd = &cobra.Command{
	Use:   "events",
	Short: "Start the event bus worker",
	Long:  `Run the event bus with the audit subscribers attached, for running side effects out of process.`,
	Run: func(cmd *cobra.Command, args []string) {
		startEventWorker()
	},
}

func init() {
	workerCmd.AddCommand(eventWorkerCmd)
}

func startEventWorker() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	bus := events.NewBus(lg)
	subscribeEventLoggers(bus, lg)

	lg.Info("event worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	lg.Info("event worker shutting down", "signal", sig)
}
