package assistant

import (
	"fmt"
	"strings"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

// PromptPayload is the system/user message pair sent to the generation
// service. Stateless and reproducible from a bundle plus query text.
type PromptPayload struct {
	System string
	User   string
}

const systemPrompt = `You are a specialized assistant for the Global Pet Travel Assistant application.
Your role is to provide accurate, helpful information about international pet travel requirements.

When responding to user queries:
1. Always base your answers on the factual data provided in the context
2. Structure your responses in a clear, organized manner with headings and bullet points
3. Include specific requirements for documents, vaccinations, quarantine, and timelines
4. If information is missing from the context, acknowledge the limitation rather than making up details
5. When appropriate, mention important safety considerations for pet travel
6. Format your response with Markdown for readability

Remember that your advice may impact the health and safety of pets during international travel,
so accuracy and clarity are essential.`

// ComposePrompt renders a bundle and the raw query text into a prompt
// payload. Section order and placeholder wording are fixed.
func ComposePrompt(queryText string, bundle *Bundle) PromptPayload {
	parts := []string{
		formatCountryData(bundle.Countries),
		formatPetData(bundle.PetType),
		formatRequirementData(bundle.Requirement),
	}
	if history := formatHistory(bundle.History); history != "" {
		parts = append(parts, history)
	}
	fullContext := strings.Join(parts, "\n")

	travelContext := ""
	switch {
	case bundle.SourceCountry != "" && bundle.DestinationCountry != "" && bundle.PetTypeName != "":
		travelContext = fmt.Sprintf("The user is asking about traveling with a %s from %s to %s.",
			bundle.PetTypeName, bundle.SourceCountry, bundle.DestinationCountry)
	case bundle.DestinationCountry != "" && bundle.PetTypeName != "":
		travelContext = fmt.Sprintf("The user is asking about requirements for a %s entering %s.",
			bundle.PetTypeName, bundle.DestinationCountry)
	}

	user := fmt.Sprintf(`%s

USER QUERY: %s

AVAILABLE DATA:
%s

Based on the above data, provide a clear, accurate response about the pet travel requirements.
Format your response with Markdown for readability.`, travelContext, queryText, fullContext)

	return PromptPayload{
		System: systemPrompt,
		User:   strings.TrimSpace(user),
	}
}

func formatCountryData(countries []models.Country) string {
	if len(countries) == 0 {
		return "No country-specific data available."
	}

	var sb strings.Builder
	sb.WriteString("## COUNTRY DATA\n\n")
	for _, c := range countries {
		fmt.Fprintf(&sb, "### %s (%s)\n", c.Name, c.Code)
		fmt.Fprintf(&sb, "Entry Requirements: %s\n", c.EntryRequirements)
		fmt.Fprintf(&sb, "Vaccination Requirements: %s\n", c.VaccinationRequirements)
		fmt.Fprintf(&sb, "Quarantine Requirements: %s\n", c.QuarantineRequirements)
		fmt.Fprintf(&sb, "Documentation Timeline: %s\n\n", c.DocumentationTimeline)
	}
	return sb.String()
}

func formatPetData(petType *models.PetType) string {
	if petType == nil {
		return "No pet-specific data available."
	}

	var sb strings.Builder
	sb.WriteString("## PET TYPE DATA\n\n")
	fmt.Fprintf(&sb, "### %s (%s)\n", petType.Name, petType.Species)
	fmt.Fprintf(&sb, "General Requirements: %s\n", petType.GeneralRequirements)
	fmt.Fprintf(&sb, "Airline Policies: %s\n", petType.AirlinePolicies)
	fmt.Fprintf(&sb, "Carrier Requirements: %s\n\n", petType.CarrierRequirements)
	return sb.String()
}

func formatRequirementData(req *RequirementContext) string {
	if req == nil {
		return "No specific country-pet requirements available."
	}

	var sb strings.Builder
	sb.WriteString("## SPECIFIC REQUIREMENTS\n\n")
	fmt.Fprintf(&sb, "### %s requirements for %s\n", req.PetTypeName, req.CountryName)
	fmt.Fprintf(&sb, "Specific Requirements: %s\n", req.SpecificRequirements)
	fmt.Fprintf(&sb, "Additional Documents: %s\n", req.AdditionalDocuments)
	if req.Prohibited {
		sb.WriteString("⚠️ **THIS PET TYPE IS PROHIBITED IN THIS COUNTRY** ⚠️\n\n")
	}
	return sb.String()
}

func formatHistory(history []Exchange) string {
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## CONVERSATION HISTORY\n\n")
	for i, exchange := range history {
		fmt.Fprintf(&sb, "User Query %d: %s\n", i+1, exchange.QueryText)
		fmt.Fprintf(&sb, "Response %d: %s\n\n", i+1, exchange.ResponseText)
	}
	return sb.String()
}
