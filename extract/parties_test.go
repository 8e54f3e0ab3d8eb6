package extract

import "testing"

const agreementText = "Service Agreement between TechCorp Inc. and Global Industries Ltd. Total: $150,000.00 USD. Net 30 days. Wire Transfer."

func TestExtractPartiesAgreement(t *testing.T) {
	parties, partial := ExtractParties(agreementText)

	if len(parties) != 2 {
		t.Fatalf("Expected 2 parties, got %d: %+v", len(parties), parties)
	}
	if parties[0].Name != "TechCorp Inc." {
		t.Errorf("Expected first party TechCorp Inc., got %q", parties[0].Name)
	}
	if parties[0].LegalEntity != "Inc." {
		t.Errorf("Expected legal entity Inc., got %q", parties[0].LegalEntity)
	}
	if parties[1].Name != "Global Industries Ltd." {
		t.Errorf("Expected second party Global Industries Ltd., got %q", parties[1].Name)
	}
	if parties[1].LegalEntity != "Ltd." {
		t.Errorf("Expected legal entity Ltd., got %q", parties[1].LegalEntity)
	}

	if partial.Section != SectionParties {
		t.Errorf("Expected section %s, got %s", SectionParties, partial.Section)
	}
	if partial.Confidence() <= 0 {
		t.Error("Expected positive section confidence")
	}
}

func TestExtractPartiesRoles(t *testing.T) {
	tests := []struct {
		name string
		text string
		role string
	}{
		{"client keyword", "The Client: Acme Systems Inc. agrees to the terms", "Client"},
		{"vendor keyword", "Vendor: Brightside Corp. will deliver services", "Service Provider"},
		{"partner keyword", "joint venture with Northwind Trading Company", "Partner"},
		{"no keyword", "Agreement by Quiet Harbor LLC for consulting", "Party"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parties, _ := ExtractParties(tt.text)
			if len(parties) == 0 {
				t.Fatal("Expected at least one party")
			}
			if parties[0].Role != tt.role {
				t.Errorf("Expected role %s, got %s", tt.role, parties[0].Role)
			}
		})
	}
}

func TestExtractPartiesDedup(t *testing.T) {
	text := "between TechNova Inc. and others. TechNova Inc. shall provide. Client: TechNova Inc."

	parties, _ := ExtractParties(text)
	count := 0
	for _, p := range parties {
		if p.Name == "TechNova Inc." {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected TechNova Inc. once, got %d occurrences", count)
	}
}

func TestExtractPartiesLimit(t *testing.T) {
	text := "Alpha Widgets Inc. Beta Widgets Inc. Gamma Widgets Inc. Delta Widgets Inc. Epsilon Widgets Inc."

	parties, _ := ExtractParties(text)
	if len(parties) > maxParties {
		t.Errorf("Expected at most %d parties, got %d", maxParties, len(parties))
	}
}

func TestExtractPartiesEmpty(t *testing.T) {
	parties, partial := ExtractParties("")
	if len(parties) != 0 {
		t.Errorf("Expected no parties, got %d", len(parties))
	}
	if partial.Confidence() != 0 {
		t.Errorf("Expected zero confidence, got %v", partial.Confidence())
	}
}
