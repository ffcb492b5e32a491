package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ashwini-108/expense-tracker-aws/internal/cli"
	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/cwlog"
	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/s3store"
	"github.com/Ashwini-108/expense-tracker-aws/internal/config"
	"github.com/Ashwini-108/expense-tracker-aws/internal/logger"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/gateway"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
	"github.com/Ashwini-108/expense-tracker-aws/internal/tracing"
)

const serviceName = "expense-tracker"

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

	store := s3store.New(awsCfg, conf.AWS())
	audit := cwlog.New(awsCfg, conf.AWS())

	gw, err := gateway.New(ctx, store, audit)
	if err != nil {
		logger.Fatal("failed to init gateway", zap.Error(err))
	}

	l := ledger.Load(ctx, gw, conf.App().UserID())
	fmt.Println("✅ Expense Tracker initialized successfully!")

	if err = cli.New(l, gw).ExecuteContext(ctx); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}
