package assistant

import (
	"strings"
	"testing"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

const completeResponse = `# Bringing your dog to Japan

## Documentation
You will need an import permit and health certificate.

## Vaccination
Rabies vaccination is required at least 21 days before arrival.

## Quarantine
Expect up to 180 days of quarantine unless pre-approved.

## Timeline
Start preparing 7 months in advance.

Always consult with a veterinarian before travel.`

func TestValidateCompleteResponsePasses(t *testing.T) {
	v := NewValidator()

	result := v.Validate(completeResponse, &Bundle{})

	if !result.IsValid {
		t.Fatalf("expected a valid result, warnings %v errors %v", result.Warnings, result.Errors)
	}
	if result.Response != completeResponse {
		t.Fatal("a passing response must come back unmodified")
	}
	if len(result.Warnings) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected no findings, got warnings %v errors %v", result.Warnings, result.Errors)
	}
}

func TestValidateMissingSections(t *testing.T) {
	v := NewValidator()

	result := v.Validate("You should consult with a veterinarian about vaccination and quarantine rules.", &Bundle{})

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected warnings for documentation and timeline, got %v", result.Warnings)
	}
	if !strings.Contains(result.Response, "## Required Documentation") {
		t.Fatal("documentation template missing from augmented response")
	}
	if !strings.Contains(result.Response, "## Recommended Timeline") {
		t.Fatal("timeline template missing from augmented response")
	}
	if strings.Contains(result.Response, "## Vaccination Requirements") {
		t.Fatal("vaccination template should not be appended when the term is present")
	}
	if !strings.Contains(result.Response, "*Note: Some sections of this response were automatically added to provide complete information.*") {
		t.Fatal("auto-added note missing")
	}
}

func TestValidateVaccineContradiction(t *testing.T) {
	v := NewValidator()
	bundle := &Bundle{
		Countries: []models.Country{
			{Name: "Japan", VaccinationRequirements: "rabies vaccination required"},
		},
	}
	response := completeResponse + "\nGood news: rabies is not required for short stays."

	result := v.Validate(response, bundle)

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Japan") || !strings.Contains(result.Errors[0], "rabies") {
		t.Fatalf("error should name the country and vaccine: %q", result.Errors[0])
	}
	if !strings.Contains(result.Response, "## ⚠️ Important Corrections ⚠️") {
		t.Fatal("corrections section missing")
	}
	if !strings.Contains(result.Response, "**Japan** requires rabies vaccination") {
		t.Fatalf("correction line missing:\n%s", result.Response)
	}
}

func TestValidateQuarantineContradiction(t *testing.T) {
	v := NewValidator()
	bundle := &Bundle{
		Countries: []models.Country{
			{Name: "Australia", QuarantineRequirements: "Minimum 10 day quarantine at an approved facility"},
		},
	}
	response := completeResponse + "\nThere is no quarantine for vaccinated pets."

	result := v.Validate(response, bundle)

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "quarantine") {
		t.Fatalf("expected a quarantine contradiction, got %v", result.Errors)
	}
	if !strings.Contains(result.Response, "**Australia** has quarantine requirements.") {
		t.Fatal("quarantine correction line missing")
	}
}

func TestValidateProhibitionContradiction(t *testing.T) {
	v := NewValidator()
	bundle := &Bundle{
		Requirement: &RequirementContext{
			CountryName: "Australia",
			PetTypeName: "Hamster",
			Prohibited:  true,
		},
	}
	response := completeResponse + "\nHamsters are allowed with the right paperwork."

	result := v.Validate(response, bundle)

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one prohibition error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Hamster") || !strings.Contains(result.Errors[0], "Australia") {
		t.Fatalf("error should name the pet type and country: %q", result.Errors[0])
	}
	if !strings.Contains(result.Response, "PROHIBITED") {
		t.Fatal("augmented response should shout the prohibition")
	}
}

func TestValidateSkipsContradictionsWithoutData(t *testing.T) {
	v := NewValidator()

	result := v.Validate(completeResponse+"\nNo rabies shots needed, no quarantine, everything is allowed.", &Bundle{})

	if len(result.Errors) != 0 {
		t.Fatalf("contradiction checks need country or requirement data, got %v", result.Errors)
	}
}

func TestValidateMissingDisclaimers(t *testing.T) {
	v := NewValidator()
	response := `Documentation, vaccination, quarantine and timeline details are all handled for you.`

	result := v.Validate(response, &Bundle{})

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Response, "## Important Disclaimers") {
		t.Fatal("disclaimer block missing")
	}
	if !strings.Contains(result.Response, "*Note: Safety disclaimers were automatically added to this response.*") {
		t.Fatal("auto-added note missing")
	}
}

func TestValidateAugmentationsAccumulate(t *testing.T) {
	v := NewValidator()
	bundle := &Bundle{
		Countries: []models.Country{
			{Name: "Japan", VaccinationRequirements: "rabies vaccination required"},
		},
	}
	// Missing every section and disclaimer, and contradicts the vaccine data.
	response := "Travel is easy, there is no rabies requirement."

	result := v.Validate(response, bundle)

	if result.IsValid {
		t.Fatal("expected an invalid result")
	}

	sectionIdx := strings.Index(result.Response, "## Required Documentation")
	correctionIdx := strings.Index(result.Response, "## ⚠️ Important Corrections ⚠️")
	disclaimerIdx := strings.Index(result.Response, "## Important Disclaimers")
	if sectionIdx == -1 || correctionIdx == -1 || disclaimerIdx == -1 {
		t.Fatalf("expected all three augmentations:\n%s", result.Response)
	}
	if !(sectionIdx < correctionIdx && correctionIdx < disclaimerIdx) {
		t.Fatal("augmentations must be appended in check order")
	}
	if !strings.HasPrefix(result.Response, response) {
		t.Fatal("the original text must be preserved at the start")
	}
}
