package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/leekchan/accounting"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"zibal-client/domain/entities/gateway"
	"zibal-client/infrastructure/service/gateway_service"
	"zibal-client/utils/configs"
	"zibal-client/utils/helpers"
	logger2 "zibal-client/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)

	if len(os.Args) < 3 {
		usage()
	}

	client := gateway_service.NewGatewayClient(config.GatewayURI, nil, lg)
	ctx := context.Background()

	switch os.Args[1] {
	case "request":
		amount := cast.ToInt64(os.Args[2])

		request := gateway.NewCreateTransactionRequest(config.Merchant, amount, config.CallbackURL).
			SetOrderID(helpers.GetUUId()).
			SetDescription("payment " + helpers.GetCurrentTime().Format("2006-01-02 15:04:05"))
		request.IsTest = config.IsTest

		response, err := client.RequestTransaction(ctx, request, config.Lazy, config.Advanced)
		if err != nil {
			lg.With(zap.Error(err)).Fatal("request transaction failed")
		}
		if !response.Result.IsSuccess() {
			lg.With(
				zap.Int("result", int(response.Result)),
				zap.String("message", response.Message),
			).Fatal("gateway refused the transaction")
		}

		ac := accounting.DefaultAccounting("IRR ", 0)
		ac.Thousand = ","
		fmt.Println("amount:", ac.FormatMoney(amount))
		fmt.Println("trackId:", response.TrackID)
		fmt.Println("pay at:", client.PaymentURL(response.TrackID))

	case "verify":
		trackID := cast.ToInt64(os.Args[2])

		request := gateway.NewVerifyTransactionRequest(config.Merchant, trackID)
		request.IsTest = config.IsTest

		response, err := client.VerifyTransaction(ctx, request, config.Advanced)
		if err != nil {
			lg.With(zap.Error(err)).Fatal("verify transaction failed")
		}

		fmt.Println("result:", response.Result.Message())
		fmt.Println("status:", response.Status.Message())
		fmt.Println("amount:", humanize.Comma(response.Amount), "IRR")
		if response.RefNumber != nil {
			fmt.Println("refNumber:", *response.RefNumber)
		}

	case "inquiry":
		trackID := cast.ToInt64(os.Args[2])

		request := gateway.NewInquiryTransactionRequest(config.Merchant, trackID)
		request.IsTest = config.IsTest

		response, err := client.GetTransactionStatus(ctx, request, config.Advanced)
		if err != nil {
			lg.With(zap.Error(err)).Fatal("inquiry transaction failed")
		}

		fmt.Println("result:", response.Result.Message())
		fmt.Println("status:", response.Status.Message())
		fmt.Println("amount:", humanize.Comma(response.Amount), "IRR")
		fmt.Println("createdAt:", response.CreatedAt)
		fmt.Println("verifiedAt:", response.VerifiedAt)
		fmt.Println("wage:", response.Wage)

	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: payment request <amount> | verify <trackId> | inquiry <trackId>")
	os.Exit(2)
}
