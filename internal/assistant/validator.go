package assistant

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult is the outcome of validating one generated response.
// IsValid is true only when every check passed with no augmentation needed;
// otherwise Response carries the original text plus every triggered
// augmentation, in check order.
type ValidationResult struct {
	IsValid  bool
	Response string
	Warnings []string
	Errors   []string
}

var defaultRequiredSections = []string{
	"documentation",
	"vaccination",
	"quarantine",
	"timeline",
}

var defaultSafetyDisclaimers = []string{
	"consult with a veterinarian",
	"check with the embassy",
	"requirements may change",
	"official website",
	"verify all information",
}

var defaultKnownVaccines = []string{
	"rabies",
	"distemper",
	"hepatitis",
	"parvovirus",
	"parainfluenza",
	"bordetella",
	"leptospirosis",
}

// Validator checks generated text against the context bundle it was produced
// from. The reference lists are fixed at construction so tests can swap them.
type Validator struct {
	sections    []string
	disclaimers []string
	vaccines    []string
}

func NewValidator() *Validator {
	return &Validator{
		sections:    defaultRequiredSections,
		disclaimers: defaultSafetyDisclaimers,
		vaccines:    defaultKnownVaccines,
	}
}

// Validate runs the three checks in order: required sections, contradictions,
// safety disclaimers. Each check inspects the original response text;
// augmentations accumulate onto the returned response.
func (v *Validator) Validate(response string, bundle *Bundle) ValidationResult {
	result := ValidationResult{
		IsValid:  true,
		Response: response,
	}
	lower := strings.ToLower(response)

	for _, check := range []func(string, *Bundle, *ValidationResult){
		v.checkRequiredSections,
		v.checkContradictions,
		v.checkSafetyDisclaimers,
	} {
		check(lower, bundle, &result)
	}

	return result
}

func (v *Validator) checkRequiredSections(lower string, _ *Bundle, result *ValidationResult) {
	var missing []string
	for _, section := range v.sections {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Response is missing information about %s", section))
		}
	}
	if len(missing) == 0 {
		return
	}

	result.IsValid = false
	for _, section := range missing {
		if template, ok := sectionTemplates[section]; ok {
			result.Response += "\n" + template
		}
	}
	result.Response += "\n\n---\n*Note: Some sections of this response were automatically added to provide complete information.*"
}

type contradiction struct {
	kind    string
	country string
	petType string
	vaccine string
}

func (v *Validator) checkContradictions(lower string, bundle *Bundle, result *ValidationResult) {
	if len(bundle.Countries) == 0 && bundle.Requirement == nil {
		return
	}

	var found []contradiction

	for _, country := range bundle.Countries {
		for _, vaccine := range v.requiredVaccines(country.VaccinationRequirements) {
			if strings.Contains(lower, vaccine) && negationPattern(vaccine).MatchString(lower) {
				found = append(found, contradiction{kind: "vaccination", country: country.Name, vaccine: vaccine})
				result.Errors = append(result.Errors, fmt.Sprintf(
					"Contradiction found: %s requires %s, but the response suggests it is not required.",
					country.Name, vaccine))
			}
		}

		if strings.Contains(strings.ToLower(country.QuarantineRequirements), "quarantine") {
			if strings.Contains(lower, "no quarantine") || strings.Contains(lower, "not require quarantine") {
				found = append(found, contradiction{kind: "quarantine", country: country.Name})
				result.Errors = append(result.Errors, fmt.Sprintf(
					"Contradiction found: %s requires quarantine, but the response suggests it is not required.",
					country.Name))
			}
		}
	}

	if req := bundle.Requirement; req != nil && req.Prohibited {
		if strings.Contains(lower, "allowed") || strings.Contains(lower, "permitted") {
			found = append(found, contradiction{kind: "prohibition", country: req.CountryName, petType: req.PetTypeName})
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Contradiction found: %s is prohibited in %s, but the response suggests it is allowed.",
				req.PetTypeName, req.CountryName))
		}
	}

	if len(found) == 0 {
		return
	}

	result.IsValid = false
	var sb strings.Builder
	sb.WriteString("\n\n## ⚠️ Important Corrections ⚠️\n")
	for _, c := range found {
		switch c.kind {
		case "vaccination":
			fmt.Fprintf(&sb, "- **%s** requires %s vaccination. Please disregard any contrary information.\n",
				c.country, c.vaccine)
		case "quarantine":
			fmt.Fprintf(&sb, "- **%s** has quarantine requirements. Please disregard any information suggesting no quarantine is needed.\n",
				c.country)
		case "prohibition":
			fmt.Fprintf(&sb, "- **%s** pets are **PROHIBITED** in %s. Please disregard any information suggesting they are allowed.\n",
				c.petType, c.country)
		}
	}
	sb.WriteString("\nPlease refer to official sources for the most accurate and up-to-date information.")
	result.Response += sb.String()
}

func (v *Validator) checkSafetyDisclaimers(lower string, _ *Bundle, result *ValidationResult) {
	for _, disclaimer := range v.disclaimers {
		if strings.Contains(lower, disclaimer) {
			return
		}
	}

	result.IsValid = false
	result.Warnings = append(result.Warnings,
		"Response is missing safety disclaimers recommending users to verify information with official sources or consult with professionals.")
	result.Response += disclaimerBlock
	result.Response += "\n\n---\n*Note: Safety disclaimers were automatically added to this response.*"
}

// requiredVaccines returns the known vaccine names mentioned in a country's
// vaccination-requirements text.
func (v *Validator) requiredVaccines(requirements string) []string {
	lower := strings.ToLower(requirements)
	var found []string
	for _, vaccine := range v.vaccines {
		if strings.Contains(lower, vaccine) {
			found = append(found, vaccine)
		}
	}
	return found
}

// negationPattern matches phrasings that claim a vaccine is not needed,
// e.g. "no rabies", "not require a rabies shot", "rabies is not required".
func negationPattern(vaccine string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(vaccine)
	return regexp.MustCompile(fmt.Sprintf("no %s|not require.*%s|%s.*not required", quoted, quoted, quoted))
}

var sectionTemplates = map[string]string{
	"documentation": `## Required Documentation
- Pet passport or health certificate
- Import permit (where applicable)
- Rabies vaccination certificate
- Additional health certificates as required by the destination country

Please check with the embassy or consulate of your destination country for the most up-to-date documentation requirements.`,

	"vaccination": `## Vaccination Requirements
- Rabies vaccination (must be administered at least 21 days before travel)
- Additional vaccinations may be required depending on the destination country
- Microchipping usually must be done before vaccinations for the vaccinations to be valid

Consult with a veterinarian to ensure your pet's vaccinations meet the requirements for travel.`,

	"quarantine": `## Quarantine Information
Some countries require quarantine periods for incoming pets. The length and conditions vary by country.

Always check the latest quarantine regulations with official sources before planning your trip.`,

	"timeline": `## Recommended Timeline
- 6+ months before travel: Research requirements and begin planning
- 3-4 months before: Schedule veterinary appointments and begin vaccination process if needed
- 30-60 days before: Obtain necessary health certificates and documentation
- 7-14 days before: Final veterinary check-up and document verification

This timeline may vary based on specific country requirements.`,
}

const disclaimerBlock = `

## Important Disclaimers
- Requirements for pet travel may change without notice. Always verify information with official sources.
- Consult with a veterinarian before traveling with your pet to ensure they are fit for travel.
- Check with the embassy or consulate of your destination country for the most current requirements.
- This information is provided as guidance only and should not be considered legal advice.
- Airlines may have additional requirements beyond country regulations.`
