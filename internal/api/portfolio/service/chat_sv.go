package portfolioService

import (
	"PortfolioBackend/internal/api/portfolio"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/keyword"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	skillListLimit = 8
	replyCacheTTL  = 15 * time.Minute
)

type replyRule struct {
	keywords []string
	build    func(p entity.Profile) string
}

// Rule order is a behavioral contract: the first matching category wins even
// when keywords of a later category are also present, so "hi, tell me about
// your projects" gets the greeting, not the project list.
var replyRules = []replyRule{
	{keywords: []string{"hello", "hi", "hey"}, build: greetingReply},
	{keywords: []string{"skill", "stack", "tech"}, build: skillsReply},
	{keywords: []string{"project", "portfolio", "work"}, build: projectsReply},
	{keywords: []string{"contact", "email", "reach"}, build: contactReply},
}

// selectReply maps a free-text message to a canned reply. It is a pure
// function of the message and the profile and is total on all inputs:
// an empty or unmatched message falls through to the default reply.
func selectReply(p entity.Profile, message string) string {
	q := keyword.Normalize(message)

	for _, rule := range replyRules {
		if keyword.ContainsAny(q, rule.keywords...) {
			return rule.build(p)
		}
	}

	return defaultReply(p)
}

func greetingReply(p entity.Profile) string {
	return fmt.Sprintf("Hey! I'm %s, a %s. I build immersive web experiences, AI tools, and modern applications. How can I help?",
		p.Name, p.Title)
}

func skillsReply(p entity.Profile) string {
	return "Here’s my core stack:\n" +
		fmt.Sprintf("- Frontend: %s\n", strings.Join(p.Skills.Frontend, ", ")) +
		fmt.Sprintf("- Backend: %s\n", strings.Join(p.Skills.Backend, ", ")) +
		fmt.Sprintf("- Databases: %s\n", strings.Join(p.Skills.Database, ", ")) +
		fmt.Sprintf("- AI & IDEs: %s\n", truncatedList(p.Skills.AI)) +
		fmt.Sprintf("- Others: %s", truncatedList(p.Skills.Others))
}

// truncatedList keeps the first eight entries and always appends the ellipsis
// marker, even when the category has eight or fewer entries. The published
// reply format depends on the marker being there unconditionally.
func truncatedList(items []string) string {
	if len(items) > skillListLimit {
		items = items[:skillListLimit]
	}
	return strings.Join(items, ", ") + "…"
}

func projectsReply(p entity.Profile) string {
	lines := make([]string, 0, len(p.Projects))
	for _, project := range p.Projects {
		first := ""
		if len(project.Highlights) > 0 {
			first = project.Highlights[0]
		}
		lines = append(lines, fmt.Sprintf("• %s (%s): %s", project.Name, project.Period, first))
	}
	return "Some highlights:\n" + strings.Join(lines, "\n")
}

func contactReply(p entity.Profile) string {
	return fmt.Sprintf("You can reach me at %s or %s (%s).",
		p.Contact.Email, p.Contact.Phone, p.Contact.Location)
}

func defaultReply(p entity.Profile) string {
	return fmt.Sprintf("I'm %s — %s. I’ve delivered 50+ projects across web, mobile, and games. Ask me about my stack, projects, or availability.",
		p.Name, p.Title)
}

// Chat wraps the selector with a best-effort Redis cache. Replies are pure
// functions of (message, profile), so caching on the normalized message is
// safe; a down cache never fails the request. The request history field is
// accepted for forward compatibility and deliberately not consulted.
func (s *portfolioService) Chat(ctx context.Context, req portfolio.ChatRequest) (*portfolio.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Message == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Chat request with empty message")
		return nil, portfolio.ErrEmptyMessage
	}

	cacheKey := "chat:reply:" + keyword.Normalize(req.Message)

	if s.redis != nil {
		if cached, err := s.redis.GetReply(ctx, cacheKey); err == nil && cached != "" {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"cache_key":  cacheKey,
			}).Debug("Serving chat reply from cache")
			return &portfolio.ChatResponse{Reply: cached}, nil
		}
	}

	reply := selectReply(s.profile, req.Message)

	if s.redis != nil {
		if err := s.redis.SetReply(ctx, cacheKey, reply, replyCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"cache_key":  cacheKey,
				"error":      err.Error(),
			}).Debug("Failed to cache chat reply")
		}
	}

	return &portfolio.ChatResponse{Reply: reply}, nil
}
