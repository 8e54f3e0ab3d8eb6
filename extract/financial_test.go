package extract

import "testing"

func TestExtractFinancialAgreement(t *testing.T) {
	fin, partial := ExtractFinancial(agreementText)

	if fin.TotalValue != "150,000.00" {
		t.Errorf("Expected total value 150,000.00, got %q", fin.TotalValue)
	}
	if fin.TotalValueConfidence <= 0 {
		t.Error("Expected positive total value confidence")
	}
	if fin.Currency != "USD" {
		t.Errorf("Expected currency USD, got %q", fin.Currency)
	}
	if partial.Confidence() <= 0 {
		t.Error("Expected positive section confidence")
	}
}

func TestExtractFinancialTotalValueRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		value string
	}{
		{"labeled total value", "Total Contract Value: $25,000.00", "25,000.00"},
		{"contract value", "Contract Value: 9,500.00 payable on signing", "9,500.00"},
		{"total with dollar", "Total: $1,200.50", "1,200.50"},
		{"amount due", "Amount Due: 300.00", "300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin, _ := ExtractFinancial(tt.text)
			if fin.TotalValue != tt.value {
				t.Errorf("Expected %q, got %q", tt.value, fin.TotalValue)
			}
		})
	}
}

func TestExtractFinancialCurrencyPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		currency string
	}{
		{"dollar symbol", "fee of $100", "USD"},
		{"euro symbol", "fee of €100", "EUR"},
		{"pound symbol", "fee of £100", "GBP"},
		{"explicit code", "all amounts in GBP", "GBP"},
		{"usd wins over eur", "$100 or €90", "USD"},
		{"no currency", "Net 45 days with no amounts", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin, _ := ExtractFinancial(tt.text)
			if fin.Currency != tt.currency {
				t.Errorf("Expected currency %q, got %q", tt.currency, fin.Currency)
			}
		})
	}
}

func TestExtractFinancialLineItems(t *testing.T) {
	text := "Consulting Services 10 $ 150.00 $ 1,500.00\nSupport Retainer 2 $ 500.00 $ 1,000.00\n"

	fin, _ := ExtractFinancial(text)
	if len(fin.LineItems) != 2 {
		t.Fatalf("Expected 2 line items, got %d: %+v", len(fin.LineItems), fin.LineItems)
	}

	first := fin.LineItems[0]
	if first.Description != "Consulting Services" {
		t.Errorf("Expected description Consulting Services, got %q", first.Description)
	}
	if first.Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", first.Quantity)
	}
	if first.UnitPrice != "$150.00" {
		t.Errorf("Expected unit price $150.00, got %q", first.UnitPrice)
	}
	if first.Total != "$1,500.00" {
		t.Errorf("Expected total $1,500.00, got %q", first.Total)
	}
}

func TestExtractFinancialTax(t *testing.T) {
	tests := []struct {
		name string
		text string
		rate string
	}{
		{"tax rate", "Tax Rate: 8.25%", "8.25%"},
		{"vat", "VAT: 20%", "20%"},
		{"sales tax", "Sales Tax: 7%", "7%"},
		{"no tax", "no percentages here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fin, _ := ExtractFinancial(tt.text)
			if tt.rate == "" {
				if fin.TaxInformation != nil {
					t.Errorf("Expected no tax info, got %+v", fin.TaxInformation)
				}
				return
			}
			if fin.TaxInformation == nil {
				t.Fatal("Expected tax info")
			}
			if fin.TaxInformation.Rate != tt.rate {
				t.Errorf("Expected rate %q, got %q", tt.rate, fin.TaxInformation.Rate)
			}
		})
	}
}

func TestExtractFinancialEmptySection(t *testing.T) {
	fin, partial := ExtractFinancial("Net 45 days, nothing else of note")

	if fin.TotalValue != "" || fin.Currency != "" || len(fin.LineItems) != 0 || fin.TaxInformation != nil {
		t.Errorf("Expected empty financial details, got %+v", fin)
	}
	if partial.Confidence() != 0 {
		t.Errorf("Expected zero section confidence, got %v", partial.Confidence())
	}
}
