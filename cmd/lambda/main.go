package main

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-xray-sdk-go/xray"

	adaptermiddleware "casting-agency/internal/adapters/http/middleware"
	adapterlogger "casting-agency/internal/adapters/logger"
	"casting-agency/internal/application"
	"casting-agency/internal/infrastructure"
	"casting-agency/internal/infrastructure/auth"
	"casting-agency/internal/infrastructure/dynamodb"
	httpiface "casting-agency/internal/interfaces/http"
	"casting-agency/internal/platform/lambda"
)

func main() {
	logger := adapterlogger.New()

	cfg, err := infrastructure.LoadConfig()
	if err != nil {
		logger.Error(context.Background(), "configuration error", "error", err)
		os.Exit(1)
	}
	xray.Configure(xray.Config{LogLevel: "error"})

	ddbClient, err := dynamodb.NewClient(context.Background(), cfg.Region, cfg.TableName)
	if err != nil {
		logger.Error(context.Background(), "failed to initialize dynamodb client", "error", err)
		os.Exit(1)
	}
	movieSvc := application.NewMovieService(dynamodb.NewMovieRepository(ddbClient))
	actorSvc := application.NewActorService(dynamodb.NewActorRepository(ddbClient))

	var gate httpiface.Guard
	if cfg.AuthMode == adaptermiddleware.ModeBearer {
		gate = auth.NewGate(cfg.AuthDomain, cfg.APIAudience)
	}
	guard, err := adaptermiddleware.NewGuard(cfg.AuthMode, gate)
	if err != nil {
		logger.Error(context.Background(), "failed to initialize auth guard", "error", err)
		os.Exit(1)
	}

	e := httpiface.NewRouter(
		httpiface.NewMoviesHandler(movieSvc),
		httpiface.NewActorsHandler(actorSvc),
		guard,
		httpiface.Middleware{RequestLogger: adaptermiddleware.RequestLogger(logger)},
	)
	awslambda.Start(lambda.NewLambdaHandler(e))
}
