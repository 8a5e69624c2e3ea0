package assistant

import (
	"context"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/pkg/logger"
)

// Exchange is one prior query/response pair from the same conversation.
type Exchange struct {
	QueryText    string
	ResponseText string
}

// RequirementContext is the resolved country x pet-type requirement row with
// names attached for rendering and validation.
type RequirementContext struct {
	CountryName          string
	PetTypeName          string
	SpecificRequirements string
	AdditionalDocuments  string
	Prohibited           bool
}

// Bundle is the structured snapshot of domain data relevant to one query,
// built fresh per request. Any part may be absent; the composer and validator
// handle partial bundles.
type Bundle struct {
	QueryText          string
	SourceCountry      string
	DestinationCountry string
	PetTypeName        string
	Countries          []models.Country
	PetType            *models.PetType
	Requirement        *RequirementContext
	History            []Exchange
}

type countryReader interface {
	GetCountry(ctx context.Context, id string) (*models.Country, error)
}

type petTypeReader interface {
	GetPetType(ctx context.Context, id string) (*models.PetType, error)
}

type requirementReader interface {
	GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error)
}

type conversationReader interface {
	ListConversation(ctx context.Context, conversationID, excludeID string) ([]models.UserQuery, error)
}

type assembler struct {
	countries    countryReader
	petTypes     petTypeReader
	requirements requirementReader
	queries      conversationReader
}

func NewAssembler(countries countryReader, petTypes petTypeReader, requirements requirementReader, queries conversationReader) *assembler {
	return &assembler{
		countries:    countries,
		petTypes:     petTypes,
		requirements: requirements,
		queries:      queries,
	}
}

// Build resolves the domain records a query references. Every lookup degrades
// gracefully: a missing record or storage error leaves that part of the bundle
// empty instead of failing the build.
func (a *assembler) Build(ctx context.Context, query *models.UserQuery, includeHistory bool) *Bundle {
	log := logger.FromContext(ctx)

	bundle := &Bundle{QueryText: query.QueryText}

	var source, destination *models.Country
	if query.SourceCountryID != "" {
		source = a.lookupCountry(ctx, query.SourceCountryID)
	}
	if query.DestinationCountryID != "" {
		if query.DestinationCountryID == query.SourceCountryID {
			destination = source
		} else {
			destination = a.lookupCountry(ctx, query.DestinationCountryID)
		}
	}
	if source != nil {
		bundle.SourceCountry = source.Name
		bundle.Countries = append(bundle.Countries, *source)
	}
	if destination != nil {
		bundle.DestinationCountry = destination.Name
		if destination != source {
			bundle.Countries = append(bundle.Countries, *destination)
		}
	}

	if query.PetTypeID != "" {
		petType, err := a.petTypes.GetPetType(ctx, query.PetTypeID)
		if err != nil {
			log.Warn("pet type lookup failed", "pet_type_id", query.PetTypeID, "error", err)
		} else {
			bundle.PetType = petType
			bundle.PetTypeName = petType.Name
		}
	}

	if query.DestinationCountryID != "" && query.PetTypeID != "" {
		req, err := a.requirements.GetRequirement(ctx, query.DestinationCountryID, query.PetTypeID)
		if err != nil {
			log.Warn("requirement lookup failed",
				"country_id", query.DestinationCountryID, "pet_type_id", query.PetTypeID, "error", err)
		} else {
			bundle.Requirement = &RequirementContext{
				CountryName:          bundle.DestinationCountry,
				PetTypeName:          bundle.PetTypeName,
				SpecificRequirements: req.SpecificRequirements,
				AdditionalDocuments:  req.AdditionalDocuments,
				Prohibited:           req.Prohibited,
			}
		}
	}

	if includeHistory && query.ConversationID != "" {
		prior, err := a.queries.ListConversation(ctx, query.ConversationID, query.ID)
		if err != nil {
			log.Warn("conversation history lookup failed", "conversation_id", query.ConversationID, "error", err)
		} else {
			for _, prev := range prior {
				bundle.History = append(bundle.History, Exchange{
					QueryText:    prev.QueryText,
					ResponseText: prev.ResponseText,
				})
			}
		}
	}

	return bundle
}

func (a *assembler) lookupCountry(ctx context.Context, id string) *models.Country {
	country, err := a.countries.GetCountry(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warn("country lookup failed", "country_id", id, "error", err)
		return nil
	}
	return country
}
