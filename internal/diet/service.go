// Package diet drafts member diet plans through the text-generation
// service.
package diet

import (
	"context"
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/textgen"
)

// planFallback is returned when the plan generator is unavailable.
const planFallback = "Diet service offline. Ask a trainer for the standard plan sheet."

const planSystemPrompt = "You are a gym nutritionist. Write practical Indian vegetarian-friendly diet plans. Keep it under 200 words."

// Service drafts diet plans.
type Service struct {
	gen textgen.Generator
}

// NewService builds a Service.
func NewService(gen textgen.Generator) *Service {
	return &Service{gen: gen}
}

// GeneratePlan drafts a plan for one member. Generator failures degrade
// to canned copy rather than failing the request.
func (s *Service) GeneratePlan(ctx context.Context, memberName, requirements string) string {
	prompt := fmt.Sprintf("Create a daily diet plan for %s. Requirements: %s", memberName, requirements)
	text, err := s.gen.Generate(ctx, planSystemPrompt, prompt)
	if err != nil {
		return planFallback
	}
	return text
}
