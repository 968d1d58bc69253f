package leads

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/tathastu-fit/tathastu-erp/internal/shared"
	"github.com/tathastu-fit/tathastu-erp/internal/textgen"
)

// adFallback is returned when the copy generator is unavailable.
const adFallback = "Join Tathastu Fit today! First week free."

const adSystemPrompt = "You write short, punchy gym ads for an Indian audience. Two sentences max."

// Name and source pools for simulated campaign responses. Real campaign
// integrations replace this with webhook ingestion; until then launches
// synthesize plausible local leads.
var (
	firstNames = []string{"Rahul", "Amit", "Priya", "Sneha", "Vikram", "Anjali", "Rohan", "Kavya"}
	lastNames  = []string{"Sharma", "Verma", "Singh", "Patel", "Iyer", "Khan", "Nair", "Desai"}
	sources    = []string{"Instagram Ads", "WhatsApp Blast"}
)

// RepositoryPort abstracts inbox persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Lead, error)
	Insert(ctx context.Context, l Lead) (int64, error)
}

// AuditPort records mutations.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service runs campaigns and drafts ad copy.
type Service struct {
	repo  RepositoryPort
	gen   textgen.Generator
	audit AuditPort
	rng   *rand.Rand
}

// NewService builds a Service. rng drives the simulated campaign
// response; pass a seeded source in tests.
func NewService(repo RepositoryPort, gen textgen.Generator, audit AuditPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Service{repo: repo, gen: gen, audit: audit, rng: rng}
}

// List returns the lead inbox.
func (s *Service) List(ctx context.Context) ([]Lead, error) {
	return s.repo.List(ctx)
}

// LaunchCampaign targets an area and captures between one and three
// leads tagged with a fresh campaign code.
func (s *Service) LaunchCampaign(ctx context.Context, area string) (CampaignResult, error) {
	code := uuid.NewString()[:8]
	count := 1 + s.rng.Intn(3)

	leads := make([]Lead, 0, count)
	for i := 0; i < count; i++ {
		l := Lead{
			Name:        firstNames[s.rng.Intn(len(firstNames))] + " " + lastNames[s.rng.Intn(len(lastNames))],
			Phone:       fmt.Sprintf("+91 9%09d", s.rng.Intn(1_000_000_000)),
			Source:      sources[s.rng.Intn(len(sources))],
			Area:        area,
			Status:      StatusNew,
			CampaignRef: code,
		}
		id, err := s.repo.Insert(ctx, l)
		if err != nil {
			return CampaignResult{}, err
		}
		l.ID = id
		leads = append(leads, l)
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			Action:   "launch_campaign",
			Entity:   "campaign",
			EntityID: code,
			Meta:     map[string]any{"area": area, "leads": count},
		})
	}
	return CampaignResult{Code: code, Area: area, Leads: leads}, nil
}

// GenerateAd drafts ad copy for a target area, platform and goal.
// Generator failures degrade to canned copy rather than failing the
// request.
func (s *Service) GenerateAd(ctx context.Context, area, platform, goal string) string {
	prompt := fmt.Sprintf("Write a %s ad targeting %s. Campaign goal: %s.", platform, area, goal)
	text, err := s.gen.Generate(ctx, adSystemPrompt, prompt)
	if err != nil {
		return adFallback
	}
	return text
}
