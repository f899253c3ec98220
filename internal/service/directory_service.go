package service

import (
	"context"
	"log"
	"sort"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/agent/safety"
	"legal-assist-be/pkg/agent/state"
)

type IDirectoryService interface {
	SearchLawyers(ctx context.Context, legalArea, jurisdiction string) ([]dto.LawyerResponse, error)
	GetActionTemplate(ctx context.Context, topic, jurisdiction string) (*dto.ActionTemplateResponse, error)

	// ResourcesFor implements the safety gate's resource lookup.
	ResourcesFor(ctx context.Context, category, jurisdiction string) []state.CrisisResource
}

// directoryService serves the lawyer directory and crisis resource
// tables. Crisis lookups fall back to the in-code national table when
// the database has no rows for a category, since an escalation must
// never surface empty-handed.
type directoryService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   *safety.StaticResourceLookup
}

func NewDirectoryService(uowFactory unitofwork.RepositoryFactory) IDirectoryService {
	return &directoryService{
		uowFactory: uowFactory,
		fallback:   safety.NewStaticResourceLookup(),
	}
}

func (ds *directoryService) SearchLawyers(ctx context.Context, legalArea, jurisdiction string) ([]dto.LawyerResponse, error) {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if legalArea != "" {
		specs = append(specs, specification.ByLegalArea{LegalArea: legalArea})
	}
	if jurisdiction != "" {
		specs = append(specs, specification.ByJurisdictionOrNational{Jurisdiction: jurisdiction})
	}

	lawyers, err := uow.LawyerRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	sort.Slice(lawyers, func(i, j int) bool {
		return lawyers[i].Rating > lawyers[j].Rating
	})

	res := make([]dto.LawyerResponse, len(lawyers))
	for i, l := range lawyers {
		res[i] = dto.LawyerResponse{
			Id:           l.Id,
			Name:         l.Name,
			Firm:         l.Firm,
			LegalArea:    l.LegalArea,
			Jurisdiction: l.Jurisdiction,
			Phone:        l.Phone,
			Email:        l.Email,
			URL:          l.URL,
			Rating:       l.Rating,
		}
	}
	return res, nil
}

// GetActionTemplate returns the step-by-step checklist for a topic.
// A jurisdiction-specific template wins over the national one.
func (ds *directoryService) GetActionTemplate(ctx context.Context, topic, jurisdiction string) (*dto.ActionTemplateResponse, error) {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.ActionTemplateRepository().FindAll(ctx,
		specification.ByTopic{Topic: topic},
		specification.ByJurisdictionOrNational{Jurisdiction: jurisdiction},
	)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, nil
	}

	chosen := templates[0]
	for _, t := range templates {
		if t.Jurisdiction != "" {
			chosen = t
			break
		}
	}

	return &dto.ActionTemplateResponse{
		Topic:        chosen.Topic,
		Jurisdiction: chosen.Jurisdiction,
		Title:        chosen.Title,
		Steps:        chosen.Steps,
	}, nil
}

func (ds *directoryService) ResourcesFor(ctx context.Context, category, jurisdiction string) []state.CrisisResource {
	uow := ds.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.CrisisResourceRepository().FindAll(ctx,
		specification.ByCategory{Category: category},
		specification.ByJurisdictionOrNational{Jurisdiction: jurisdiction},
	)
	if err != nil {
		log.Printf("[ERROR] Crisis resource lookup failed, using static table: %v", err)
		return ds.fallback.ResourcesFor(ctx, category, jurisdiction)
	}
	if len(rows) == 0 {
		return ds.fallback.ResourcesFor(ctx, category, jurisdiction)
	}

	resources := make([]state.CrisisResource, len(rows))
	for i, r := range rows {
		resources[i] = state.CrisisResource{
			Name:        r.Name,
			Phone:       r.Phone,
			URL:         r.URL,
			Description: r.Description,
		}
	}
	return resources
}
