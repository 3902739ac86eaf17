package main

import (
	"os"

	"github.com/SscSPs/ledger_posting_engine/cmd/ledger_backend/cmd"
)

// @title Ledger Posting Engine API
// @version 1.0
// @description Double-entry posting and reversal engine: journals, category balances, bank accounts, corporate tax filings and settlements.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
