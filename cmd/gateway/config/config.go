package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/t-amuah/govgh-gateway/internal/gateway"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data/database"
	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
)

const (
	serverAddressFlag         = "a"
	serverAddressEnv          = "RUN_ADDRESS"
	serverAddressDefault      = "localhost:8080"
	govghEndpointFlag         = "g"
	govghEndpointEnv          = "GOVGH_ENDPOINT"
	govghEndpointDefault      = "https://www.govgh.org/api/v1.1/checkout/service.php"
	dbConnectionStringFlag    = "d"
	dbConnectionStringEnv     = "DATABASE_URI"
	dbConnectionStringDefault = ""
	publicBaseURLFlag         = "b"
	publicBaseURLEnv          = "PUBLIC_BASE_URL"
	publicBaseURLDefault      = "http://localhost:8080"

	apiKeyEnv        = "GOVGH_API_KEY"
	mdaBranchCodeEnv = "GOVGH_MDA_BRANCH_CODE"
	serviceCodeEnv   = "GOVGH_SERVICE_CODE"
	accountNumberEnv = "GOVGH_ACCOUNT_NUMBER"
	invoiceMemoEnv   = "GOVGH_INVOICE_MEMO"
	currencyEnv      = "GOVGH_CURRENCY"
	submitTimeoutEnv = "GOVGH_SUBMIT_TIMEOUT"
	callbackTokenEnv = "WEBHOOK_CALLBACK_TOKEN"
	enabledEnv       = "GATEWAY_ENABLED"
	titleEnv         = "GATEWAY_TITLE"
	descriptionEnv   = "GATEWAY_DESCRIPTION"

	mdaBranchCodeDefault = "PMMC_HQ"
	serviceCodeDefault   = "PPMC02"
	accountNumberDefault = "pmmc00022"
	invoiceMemoDefault   = "Gold Jewellery"
	currencyDefault      = "GHS"
	titleDefault         = "GovGH"
	descriptionDefault   = "Pay securely using GovGH."

	submitTimeoutDefault = 45 * time.Second
)

type Config struct {
	Server          gateway.Config
	Merchant        govgh.MerchantConfig
	Client          govgh.ClientConfig
	DB              database.Config
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	serverAddress := flag.String(
		serverAddressFlag,
		serverAddressDefault,
		"Server address host:port",
	)

	govghEndpoint := flag.String(
		govghEndpointFlag,
		govghEndpointDefault,
		"GovGH checkout endpoint URL",
	)

	dbConnectionString := flag.String(
		dbConnectionStringFlag,
		dbConnectionStringDefault,
		"PostgreSQL connection string",
	)

	publicBaseURL := flag.String(
		publicBaseURLFlag,
		publicBaseURLDefault,
		"Public base URL redirect and webhook URLs derive from",
	)

	flag.Parse()

	if valStr, ok := os.LookupEnv(serverAddressEnv); ok {
		*serverAddress = valStr
	}

	if valStr, ok := os.LookupEnv(govghEndpointEnv); ok {
		*govghEndpoint = valStr
	}

	if valStr, ok := os.LookupEnv(dbConnectionStringEnv); ok {
		*dbConnectionString = valStr
	}

	if valStr, ok := os.LookupEnv(publicBaseURLEnv); ok {
		*publicBaseURL = valStr
	}

	return &Config{
		Server: gateway.Config{
			ServerAddress:   *serverAddress,
			PublicBaseURL:   *publicBaseURL,
			CallbackToken:   os.Getenv(callbackTokenEnv),
			Title:           envOrDefault(titleEnv, titleDefault),
			Description:     envOrDefault(descriptionEnv, descriptionDefault),
			Enabled:         envBool(enabledEnv, true),
			ShutdownTimeout: time.Second * 5,
		},
		Merchant: govgh.MerchantConfig{
			APIKey:        os.Getenv(apiKeyEnv),
			MDABranchCode: envOrDefault(mdaBranchCodeEnv, mdaBranchCodeDefault),
			ServiceCode:   envOrDefault(serviceCodeEnv, serviceCodeDefault),
			AccountNumber: envOrDefault(accountNumberEnv, accountNumberDefault),
			Memo:          envOrDefault(invoiceMemoEnv, invoiceMemoDefault),
			Currency:      envOrDefault(currencyEnv, currencyDefault),
			BaseURL:       *publicBaseURL,
		},
		Client: govgh.ClientConfig{
			EndpointURL:   *govghEndpoint,
			SubmitTimeout: envDuration(submitTimeoutEnv, submitTimeoutDefault),
		},
		DB: database.Config{
			ConnectionString: *dbConnectionString,
		},
		ShutdownTimeout: time.Second * 5,
	}, nil
}

func envOrDefault(key, defaultValue string) string {
	if valStr, ok := os.LookupEnv(key); ok {
		return valStr
	}
	return defaultValue
}

func envBool(key string, defaultValue bool) bool {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
