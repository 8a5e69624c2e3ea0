package assistant

import (
	"strings"
	"testing"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

func TestComposePromptFullBundle(t *testing.T) {
	bundle := &Bundle{
		SourceCountry:      "United States",
		DestinationCountry: "Japan",
		PetTypeName:        "Dog",
		Countries: []models.Country{
			{
				Name:                    "Japan",
				Code:                    "JP",
				EntryRequirements:       "Import permit required",
				VaccinationRequirements: "Rabies vaccination required",
				QuarantineRequirements:  "Up to 180 days quarantine",
				DocumentationTimeline:   "Begin 7 months in advance",
			},
		},
		PetType: &models.PetType{
			Name:                "Dog",
			Species:             "Canine",
			GeneralRequirements: "Microchip required",
			AirlinePolicies:     "Varies by carrier",
			CarrierRequirements: "IATA-approved crate",
		},
	}

	payload := ComposePrompt("Can I bring my dog to Japan?", bundle)

	if !strings.Contains(payload.System, "You are a specialized assistant for the Global Pet Travel Assistant application.") {
		t.Fatal("system prompt missing persona line")
	}
	if !strings.HasPrefix(payload.User, "The user is asking about traveling with a Dog from United States to Japan.") {
		t.Fatalf("travel context mismatch:\n%s", payload.User)
	}
	if !strings.Contains(payload.User, "USER QUERY: Can I bring my dog to Japan?") {
		t.Fatal("user query line missing")
	}
	if !strings.Contains(payload.User, "## COUNTRY DATA\n\n### Japan (JP)\nEntry Requirements: Import permit required") {
		t.Fatalf("country section mismatch:\n%s", payload.User)
	}
	if !strings.Contains(payload.User, "## PET TYPE DATA\n\n### Dog (Canine)") {
		t.Fatal("pet type section missing")
	}
	if !strings.Contains(payload.User, "No specific country-pet requirements available.") {
		t.Fatal("expected the requirement placeholder")
	}
	if !strings.HasSuffix(payload.User, "Format your response with Markdown for readability.") {
		t.Fatal("closing instruction missing")
	}

	countryIdx := strings.Index(payload.User, "## COUNTRY DATA")
	petIdx := strings.Index(payload.User, "## PET TYPE DATA")
	reqIdx := strings.Index(payload.User, "No specific country-pet requirements available.")
	if !(countryIdx < petIdx && petIdx < reqIdx) {
		t.Fatal("data sections out of order")
	}
}

func TestComposePromptDestinationOnlyContext(t *testing.T) {
	bundle := &Bundle{
		DestinationCountry: "Japan",
		PetTypeName:        "Cat",
	}

	payload := ComposePrompt("what do I need?", bundle)

	if !strings.HasPrefix(payload.User, "The user is asking about requirements for a Cat entering Japan.") {
		t.Fatalf("expected the destination-only sentence, got:\n%s", payload.User)
	}
}

func TestComposePromptOmitsTravelContextWhenUnknown(t *testing.T) {
	payload := ComposePrompt("general question", &Bundle{})

	if !strings.HasPrefix(payload.User, "USER QUERY: general question") {
		t.Fatalf("expected the user message to start with the query, got:\n%s", payload.User)
	}
	if !strings.Contains(payload.User, "No country-specific data available.") {
		t.Fatal("expected the country placeholder")
	}
	if !strings.Contains(payload.User, "No pet-specific data available.") {
		t.Fatal("expected the pet placeholder")
	}
	if strings.Contains(payload.User, "## CONVERSATION HISTORY") {
		t.Fatal("empty history should be omitted entirely")
	}
}

func TestComposePromptProhibitedRequirement(t *testing.T) {
	bundle := &Bundle{
		DestinationCountry: "Australia",
		PetTypeName:        "Hamster",
		Requirement: &RequirementContext{
			CountryName:          "Australia",
			PetTypeName:          "Hamster",
			SpecificRequirements: "None",
			AdditionalDocuments:  "None",
			Prohibited:           true,
		},
	}

	payload := ComposePrompt("can I bring my hamster?", bundle)

	if !strings.Contains(payload.User, "### Hamster requirements for Australia") {
		t.Fatal("requirement heading missing")
	}
	if !strings.Contains(payload.User, "⚠️ **THIS PET TYPE IS PROHIBITED IN THIS COUNTRY** ⚠️") {
		t.Fatal("prohibition banner missing")
	}
}

func TestComposePromptRendersHistory(t *testing.T) {
	bundle := &Bundle{
		History: []Exchange{
			{QueryText: "first question", ResponseText: "first answer"},
			{QueryText: "second question", ResponseText: "second answer"},
		},
	}

	payload := ComposePrompt("follow up", bundle)

	if !strings.Contains(payload.User, "## CONVERSATION HISTORY") {
		t.Fatal("history section missing")
	}
	if !strings.Contains(payload.User, "User Query 1: first question\nResponse 1: first answer") {
		t.Fatalf("first exchange mismatch:\n%s", payload.User)
	}
	if !strings.Contains(payload.User, "User Query 2: second question\nResponse 2: second answer") {
		t.Fatalf("second exchange mismatch:\n%s", payload.User)
	}
}

func TestComposePromptIsDeterministic(t *testing.T) {
	bundle := &Bundle{DestinationCountry: "Japan", PetTypeName: "Dog"}

	first := ComposePrompt("same question", bundle)
	second := ComposePrompt("same question", bundle)

	if first != second {
		t.Fatal("composing the same inputs twice should produce identical payloads")
	}
}
