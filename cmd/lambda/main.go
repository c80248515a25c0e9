package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/container"
)

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}

	adapter := httpadapter.New(c.BufferedRouter())
	lambda.Start(adapter.ProxyWithContext)
}
