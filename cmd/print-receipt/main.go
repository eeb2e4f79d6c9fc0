package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spicetable/pos/internal/config"
	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/receipt"
)

// Renders a saved order snapshot as a printable receipt. Useful for
// reprinting from an archived bill without a running terminal.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/print-receipt/main.go <order.json>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read order file: %v\n", err)
		os.Exit(1)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse order file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	formatter := receipt.NewFormatter(receipt.Header{
		BusinessName: cfg.Business.Name,
		Address:      cfg.Business.Address,
		Phone:        cfg.Business.Phone,
	})

	fmt.Print(receipt.Render(formatter.Format(&order)))
}
