package cmd

import (
	"lendpool/worker"
	"lendpool/worker/pricesync"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lendpool job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		system := provideSystem(ctx, database)
		risks := provideRiskStore(database)

		jobs := []worker.IJob{
			pricesync.New(
				&cfg.Oracle,
				system,
				providePoolStore(database),
				provideAdminService(system, database, risks),
			),
		}

		for _, job := range jobs {
			if err := job.Start(); err != nil {
				logrus.WithError(err).Fatal("start job failed")
			}
		}

		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			for _, job := range jobs {
				if err := job.Stop(); err != nil {
					logrus.WithError(err).Error("stop job failed")
				}
			}

			close(done)
		})

		logrus.Infoln("worker started")
		<-done
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
