package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/services/classifier"
)

const (
	majorsListURL = "https://undergrad.osu.edu/majors-and-academics/majors"
	sampleSize    = 20
)

// GeneralContext is the minimal system prompt for unrouted questions.
const GeneralContext = "Helpful assistant. Answer concisely."

// TechnicalContext steers code answers toward copyable markdown blocks.
const TechnicalContext = "You are a technical expert. IMPORTANT: Format responses like ChatGPT:\n" +
	"\n" +
	"**For code/commands:**\n" +
	"1. Use clear markdown code blocks with language specified (```python, ```bash, ```yaml, etc)\n" +
	"2. Make code easily copyable\n" +
	"3. Add explanations AFTER code blocks\n" +
	"4. Show example outputs when relevant\n" +
	"\n" +
	"**Structure:**\n" +
	"- Brief explanation first\n" +
	"- Code/command in marked block\n" +
	"- What it does\n" +
	"- Example or usage\n" +
	"\n" +
	"**Example format:**\n" +
	"Here's how to deploy with Kubernetes:\n" +
	"\n" +
	"```bash\n" +
	"kubectl apply -f deployment.yaml\n" +
	"kubectl rollout status deployment/myapp\n" +
	"```\n" +
	"\n" +
	"This deploys your app and waits for rollout."

const osuContextTemplate = `You are an Ohio State University assistant. Answer OSU questions specifically.

Spring 2026 Dates:
- Jan 5: Tuition due
- Jan 12: Classes start
- Jan 16: Add/drop deadline
- Jan 23: Drop deadline with refund

Majors at OSU:
OSU offers 200+ undergraduate majors.
%s
To declare/change major: Meet with academic advisor in your college.

Resources:
- BuckeyeLink: buckeyelink.osu.edu (registration, grades, schedule)
- Advising: advising.osu.edu
- Financial Aid: sfa.osu.edu

Always provide OSU-specific answers with links when possible.`

const defaultMajorsLine = "Popular majors: Computer Science, Engineering, Business, Nursing, Psychology, Biology, Communications. Browse all at: " + majorsListURL

// MajorsSource supplies the majors list embedded in OSU prompts.
type MajorsSource interface {
	Majors(ctx context.Context) ([]string, error)
}

type Service struct {
	majors MajorsSource
}

func NewService(majors MajorsSource) *Service {
	return &Service{majors: majors}
}

// Build returns the system prompt for a question category.
func (s *Service) Build(ctx context.Context, category classifier.Category) string {
	switch category {
	case classifier.CategoryOSU:
		return s.buildOSU(ctx)
	case classifier.CategoryTechnical:
		return TechnicalContext
	default:
		return GeneralContext
	}
}

func (s *Service) buildOSU(ctx context.Context) string {
	majorsList, err := s.majors.Majors(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Majors source failed, building OSU prompt without a live list")
		majorsList = nil
	}
	return fmt.Sprintf(osuContextTemplate, majorsLine(majorsList))
}

func majorsLine(majorsList []string) string {
	if len(majorsList) == 0 {
		return defaultMajorsLine
	}

	sample := majorsList
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	return fmt.Sprintf("OSU offers %d+ undergraduate majors including: %s.\nFull list: %s",
		len(majorsList), strings.Join(sample, ", "), majorsListURL)
}
