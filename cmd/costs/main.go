package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/billing"
	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/cache"
	"github.com/Ashwini-108/expense-tracker-aws/internal/config"
	"github.com/Ashwini-108/expense-tracker-aws/internal/logger"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/costs"
	"github.com/Ashwini-108/expense-tracker-aws/internal/tracing"
)

const serviceName = "expense-costs"

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName)
	if err != nil {
		logger.Error("failed to init tracing", zap.Error(err))
	} else {
		defer closer.Close()
	}

	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.AWS().Region()))
	if err != nil {
		logger.Fatal("failed to load aws config", zap.Error(err))
	}

	fetcher := costs.NewFetcher(billing.New(awsCfg), nil)
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Error("failed to init memcached, caching disabled", zap.Error(err))
		} else {
			fetcher = costs.NewFetcher(billing.New(awsCfg), mc)
		}
	}

	root := &cobra.Command{
		Use:           "costs",
		Short:         "💸 AWS cost reports from Cost Explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReportCmd(fetcher), newExportCmd(fetcher))

	if err = root.ExecuteContext(ctx); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}
