package classifier

import (
	"strings"
)

// Category is the question type a message routes under.
type Category string

const (
	CategoryOSU       Category = "osu"
	CategoryTechnical Category = "technical"
	CategoryGeneral   Category = "general"
)

// Service routes messages by keyword membership. The keyword sets are
// fixed at construction and never change afterwards.
type Service struct {
	osuKeywords       []string
	technicalKeywords []string
}

func NewService() *Service {
	return &Service{
		osuKeywords: []string{
			"osu", "buckeye", "class", "registration", "tuition", "fee",
			"deadline", "semester", "drop", "add", "refund", "payment",
			"buckeyelink", "columbus campus", "regional campus", "major",
			"degree", "minor", "advisor", "advising", "graduate",
			"undergraduate", "college", "gpa", "transcript", "ohio state",
		},
		technicalKeywords: []string{
			"python", "javascript", "java", "docker", "kubernetes", "k8s",
			"git", "api", "database", "react", "node", "sql", "code",
			"program", "function", "algorithm", "debug", "error", "exception",
			"container", "devops", "cloud", "aws", "terraform", "yaml",
			"json", "rest", "http", "css", "html",
		},
	}
}

// Classify routes a message to a category by substring match against
// the keyword lists. OSU keywords win over technical ones; anything
// else is general.
func (s *Service) Classify(message string) Category {
	lower := strings.ToLower(message)

	for _, keyword := range s.osuKeywords {
		if strings.Contains(lower, keyword) {
			return CategoryOSU
		}
	}
	for _, keyword := range s.technicalKeywords {
		if strings.Contains(lower, keyword) {
			return CategoryTechnical
		}
	}
	return CategoryGeneral
}
