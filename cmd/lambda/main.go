package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/container"
	"github.com/saulo-duarte/planner-miniapp/internal/router"
)

func main() {
	settings, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	c, err := container.New(settings)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	adapter := httpadapter.New(router.New(c.RouterConfig()))
	lambda.Start(adapter.ProxyWithContext)
}
