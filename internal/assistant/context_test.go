package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type fakeCountryReader struct {
	countries map[string]*models.Country
	calls     int
}

func (f *fakeCountryReader) GetCountry(ctx context.Context, id string) (*models.Country, error) {
	f.calls++
	if c, ok := f.countries[id]; ok {
		return c, nil
	}
	return nil, errors.New("country not found")
}

type fakePetTypeReader struct {
	petTypes map[string]*models.PetType
}

func (f *fakePetTypeReader) GetPetType(ctx context.Context, id string) (*models.PetType, error) {
	if p, ok := f.petTypes[id]; ok {
		return p, nil
	}
	return nil, errors.New("pet type not found")
}

type fakeRequirementReader struct {
	requirement *models.CountryPetRequirement
	err         error
}

func (f *fakeRequirementReader) GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error) {
	return f.requirement, f.err
}

type fakeConversationReader struct {
	queries     []models.UserQuery
	err         error
	lastConvID  string
	lastExclude string
}

func (f *fakeConversationReader) ListConversation(ctx context.Context, conversationID, excludeID string) ([]models.UserQuery, error) {
	f.lastConvID = conversationID
	f.lastExclude = excludeID
	return f.queries, f.err
}

func newTestAssembler(countries *fakeCountryReader, petTypes *fakePetTypeReader, reqs *fakeRequirementReader, convs *fakeConversationReader) *assembler {
	if countries == nil {
		countries = &fakeCountryReader{}
	}
	if petTypes == nil {
		petTypes = &fakePetTypeReader{}
	}
	if reqs == nil {
		reqs = &fakeRequirementReader{err: errors.New("no requirement")}
	}
	if convs == nil {
		convs = &fakeConversationReader{}
	}
	return NewAssembler(countries, petTypes, reqs, convs)
}

func TestBuildResolvesSameCountryOnce(t *testing.T) {
	countries := &fakeCountryReader{countries: map[string]*models.Country{
		"7": {ID: "7", Name: "Japan", Code: "JP"},
	}}
	a := newTestAssembler(countries, nil, nil, nil)

	bundle := a.Build(context.Background(), &models.UserQuery{
		QueryText:            "moving back home",
		SourceCountryID:      "7",
		DestinationCountryID: "7",
	}, false)

	if countries.calls != 1 {
		t.Fatalf("expected a single country lookup, got %d", countries.calls)
	}
	if bundle.SourceCountry != "Japan" || bundle.DestinationCountry != "Japan" {
		t.Fatalf("expected the country in both roles, got source %q destination %q",
			bundle.SourceCountry, bundle.DestinationCountry)
	}
	if len(bundle.Countries) != 1 {
		t.Fatalf("expected one country in the bundle, got %d", len(bundle.Countries))
	}
}

func TestBuildResolvesBothCountries(t *testing.T) {
	countries := &fakeCountryReader{countries: map[string]*models.Country{
		"us": {ID: "us", Name: "United States", Code: "US"},
		"jp": {ID: "jp", Name: "Japan", Code: "JP"},
	}}
	a := newTestAssembler(countries, nil, nil, nil)

	bundle := a.Build(context.Background(), &models.UserQuery{
		SourceCountryID:      "us",
		DestinationCountryID: "jp",
	}, false)

	if len(bundle.Countries) != 2 {
		t.Fatalf("expected two countries, got %d", len(bundle.Countries))
	}
	if bundle.SourceCountry != "United States" || bundle.DestinationCountry != "Japan" {
		t.Fatalf("role mismatch: source %q destination %q", bundle.SourceCountry, bundle.DestinationCountry)
	}
}

func TestBuildDegradesOnLookupFailure(t *testing.T) {
	a := newTestAssembler(nil, nil, nil, nil)

	bundle := a.Build(context.Background(), &models.UserQuery{
		QueryText:            "can I bring my dog",
		SourceCountryID:      "missing",
		DestinationCountryID: "also-missing",
		PetTypeID:            "nope",
	}, false)

	if len(bundle.Countries) != 0 {
		t.Fatalf("expected no countries, got %d", len(bundle.Countries))
	}
	if bundle.PetType != nil {
		t.Fatal("expected no pet type")
	}
	if bundle.Requirement != nil {
		t.Fatal("expected no requirement")
	}
	if bundle.QueryText != "can I bring my dog" {
		t.Fatalf("query text mismatch: got %q", bundle.QueryText)
	}
}

func TestBuildResolvesRequirementForDestinationAndPetType(t *testing.T) {
	countries := &fakeCountryReader{countries: map[string]*models.Country{
		"au": {ID: "au", Name: "Australia", Code: "AU"},
	}}
	petTypes := &fakePetTypeReader{petTypes: map[string]*models.PetType{
		"hamster": {ID: "hamster", Name: "Hamster", Species: "Rodent"},
	}}
	reqs := &fakeRequirementReader{requirement: &models.CountryPetRequirement{
		CountryID:  "au",
		PetTypeID:  "hamster",
		Prohibited: true,
	}}
	a := newTestAssembler(countries, petTypes, reqs, nil)

	bundle := a.Build(context.Background(), &models.UserQuery{
		DestinationCountryID: "au",
		PetTypeID:            "hamster",
	}, false)

	if bundle.Requirement == nil {
		t.Fatal("expected a requirement context")
	}
	if !bundle.Requirement.Prohibited {
		t.Fatal("expected the prohibited flag to carry through")
	}
	if bundle.Requirement.CountryName != "Australia" || bundle.Requirement.PetTypeName != "Hamster" {
		t.Fatalf("name mismatch: country %q pet type %q",
			bundle.Requirement.CountryName, bundle.Requirement.PetTypeName)
	}
}

func TestBuildSkipsRequirementWithoutDestination(t *testing.T) {
	reqs := &fakeRequirementReader{requirement: &models.CountryPetRequirement{}}
	petTypes := &fakePetTypeReader{petTypes: map[string]*models.PetType{
		"dog": {ID: "dog", Name: "Dog"},
	}}
	a := newTestAssembler(nil, petTypes, reqs, nil)

	bundle := a.Build(context.Background(), &models.UserQuery{PetTypeID: "dog"}, false)

	if bundle.Requirement != nil {
		t.Fatal("requirement should only resolve when destination and pet type are both set")
	}
}

func TestBuildIncludesHistoryInOrder(t *testing.T) {
	convs := &fakeConversationReader{queries: []models.UserQuery{
		{ID: "q1", QueryText: "first", ResponseText: "answer one"},
		{ID: "q2", QueryText: "second", ResponseText: "answer two"},
	}}
	a := newTestAssembler(nil, nil, nil, convs)

	bundle := a.Build(context.Background(), &models.UserQuery{
		ID:             "q3",
		ConversationID: "conv-1",
	}, true)

	if convs.lastConvID != "conv-1" || convs.lastExclude != "q3" {
		t.Fatalf("conversation lookup mismatch: conv %q exclude %q", convs.lastConvID, convs.lastExclude)
	}
	if len(bundle.History) != 2 {
		t.Fatalf("expected two exchanges, got %d", len(bundle.History))
	}
	if bundle.History[0].QueryText != "first" || bundle.History[1].QueryText != "second" {
		t.Fatalf("history out of order: %+v", bundle.History)
	}
}

func TestBuildSkipsHistoryWhenNotRequested(t *testing.T) {
	convs := &fakeConversationReader{queries: []models.UserQuery{
		{ID: "q1", QueryText: "first", ResponseText: "answer one"},
	}}
	a := newTestAssembler(nil, nil, nil, convs)

	bundle := a.Build(context.Background(), &models.UserQuery{
		ID:             "q2",
		ConversationID: "conv-1",
	}, false)

	if len(bundle.History) != 0 {
		t.Fatalf("expected no history, got %d exchanges", len(bundle.History))
	}
}
