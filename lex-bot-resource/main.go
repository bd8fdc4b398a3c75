// Command lex-bot-resource is the Lambda behind Custom::LexBot. It
// creates, updates and deletes Amazon Lex bots through PutBot, GetBot
// and DeleteBot, answering CloudFormation with the bot's name as the
// physical id and its version and checksum as attributes.
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
	logger.Info("lex bot resource: cold start")

	lambda.Start(cfncustomresource.LambdaHandler(lexresource.NewBot(client, logger), logger))
}
