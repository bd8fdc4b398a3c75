// Command lex-intent-resource is the Lambda behind Custom::LexIntent.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	cfncustomresource "github.com/MinneapolisStarTribune/cfn-lex-resource-go"
	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/lexresource"
)

func main() {
	cfg, err := lexresource.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stdout)

	client, err := cfg.NewClient(context.Background())
	if err != nil {
		logger.Error("failed to initialize lex client", "error", err)
		os.Exit(1)
	}
	logger.Info("lex intent resource: cold start")

	lambda.Start(cfncustomresource.LambdaHandler(lexresource.NewIntent(client, logger), logger))
}
