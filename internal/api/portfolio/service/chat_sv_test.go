package portfolioService

import (
	"PortfolioBackend/internal/api/portfolio"
	"PortfolioBackend/internal/entity"
	"PortfolioBackend/pkg/log"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func testProfile() entity.Profile {
	return entity.Profile{
		Name:  "Jane Doe",
		Title: "Full Stack Developer",
		Tag:   "Building things for the web",
		Skills: entity.SkillSet{
			Frontend: []string{"React", "Next.js", "TypeScript"},
			Backend:  []string{"Node.js", "Express.js", "REST APIs"},
			AI: []string{
				"ChatGPT", "Claude", "Gemini", "Cursor IDE", "Windsurf IDE",
				"Copilot", "Deepseek", "Kimi", "OpenRouter", "Vercel-V0",
			},
			Database: []string{"MongoDB", "Firebase"},
			Others:   []string{"Git", "GitHub", "Vercel", "Figma"},
		},
		Projects: []entity.Project{
			{
				Name:       "UniToolBox",
				Period:     "2024/2–2024/10",
				Highlights: []string{"Full-stack toolkit with 30+ free tools", "Deployed on Vercel"},
			},
			{
				Name:       "Hustle Finder",
				Period:     "2023/5–2023/11",
				Highlights: []string{"600+ side hustles", "Search + pagination"},
			},
		},
		About: []string{"50+ global client projects"},
		Contact: entity.Contact{
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin, DE",
		},
	}
}

func TestSelectReplyGreeting(t *testing.T) {
	p := testProfile()

	inputs := []string{"hi", "HI there!", "Hello, who are you?", "hey"}
	for _, in := range inputs {
		reply := selectReply(p, in)
		if !strings.HasPrefix(reply, "Hey! I'm ") {
			t.Errorf("selectReply(%q) missing greeting prefix: %q", in, reply)
		}
		if !strings.Contains(reply, p.Name) || !strings.Contains(reply, p.Title) {
			t.Errorf("selectReply(%q) should contain name and title: %q", in, reply)
		}
	}
}

func TestSelectReplyGreetingWinsOverLaterCategories(t *testing.T) {
	p := testProfile()

	// Rule order is first-match-wins: the greeting keyword beats the project
	// keyword even though both are present.
	reply := selectReply(p, "hi, tell me about your projects")
	if !strings.HasPrefix(reply, "Hey! I'm ") {
		t.Errorf("expected greeting reply, got %q", reply)
	}
}

func TestSelectReplySkills(t *testing.T) {
	p := testProfile()
	reply := selectReply(p, "What's your tech stack?")

	last := -1
	for _, skill := range append(append([]string{}, p.Skills.Frontend...), p.Skills.Backend...) {
		idx := strings.Index(reply, skill)
		if idx < 0 {
			t.Fatalf("skills reply missing %q: %q", skill, reply)
		}
		if idx < last {
			t.Fatalf("skill %q out of stored order in %q", skill, reply)
		}
		last = idx
	}

	wantAILine := "- AI & IDEs: " + strings.Join(p.Skills.AI[:8], ", ") + "…"
	if !strings.Contains(reply, wantAILine) {
		t.Errorf("expected exactly 8 AI entries plus marker, want line %q in %q", wantAILine, reply)
	}
	if strings.Contains(reply, p.Skills.AI[8]) {
		t.Errorf("ninth AI entry %q should be truncated away", p.Skills.AI[8])
	}
}

func TestSelectReplySkillsMarkerOnShortCategory(t *testing.T) {
	p := testProfile()
	reply := selectReply(p, "skills?")

	// Others has fewer than eight entries; the marker is appended anyway.
	wantOthersLine := "- Others: " + strings.Join(p.Skills.Others, ", ") + "…"
	if !strings.Contains(reply, wantOthersLine) {
		t.Errorf("expected others line %q in %q", wantOthersLine, reply)
	}
}

func TestSelectReplyProjects(t *testing.T) {
	p := testProfile()
	reply := selectReply(p, "Tell me about your projects")

	lines := strings.Split(reply, "\n")
	if lines[0] != "Some highlights:" {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	if len(lines)-1 != len(p.Projects) {
		t.Fatalf("expected %d project lines, got %d", len(p.Projects), len(lines)-1)
	}

	for i, project := range p.Projects {
		want := fmt.Sprintf("• %s (%s): %s", project.Name, project.Period, project.Highlights[0])
		if lines[i+1] != want {
			t.Errorf("project line %d = %q, want %q", i, lines[i+1], want)
		}
		if strings.Contains(reply, project.Highlights[1]) {
			t.Errorf("reply should only carry the first highlight, found %q", project.Highlights[1])
		}
	}
}

func TestSelectReplyContact(t *testing.T) {
	p := testProfile()
	reply := selectReply(p, "how can I contact you")

	want := fmt.Sprintf("You can reach me at %s or %s (%s).",
		p.Contact.Email, p.Contact.Phone, p.Contact.Location)
	if reply != want {
		t.Errorf("contact reply = %q, want %q", reply, want)
	}
}

func TestSelectReplyDefault(t *testing.T) {
	p := testProfile()

	want := fmt.Sprintf("I'm %s — %s. I’ve delivered 50+ projects across web, mobile, and games. Ask me about my stack, projects, or availability.",
		p.Name, p.Title)

	for _, in := range []string{"asdkjasd", "", "   \t  "} {
		if got := selectReply(p, in); got != want {
			t.Errorf("selectReply(%q) = %q, want default %q", in, got, want)
		}
	}
}

func TestSelectReplyIdempotent(t *testing.T) {
	p := testProfile()

	for _, in := range []string{"hi", "stack", "projects", "reach me", "nothing matches"} {
		first := selectReply(p, in)
		second := selectReply(p, in)
		if first != second {
			t.Errorf("selectReply(%q) not idempotent: %q vs %q", in, first, second)
		}
	}
}

type fakeReplyCache struct {
	store map[string]string
	err   error
	sets  int
}

func (f *fakeReplyCache) Ping(ctx context.Context) error {
	return f.err
}

func (f *fakeReplyCache) GetReply(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.store[key], nil
}

func (f *fakeReplyCache) SetReply(ctx context.Context, key string, reply string, expiration time.Duration) error {
	if f.err != nil {
		return f.err
	}
	if f.store == nil {
		f.store = map[string]string{}
	}
	f.store[key] = reply
	f.sets++
	return nil
}

func TestChatServesCachedReply(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cache := &fakeReplyCache{store: map[string]string{
		"chat:reply:hello": "canned from cache",
	}}
	svc := New(log.NewLogger(), testProfile(), cache)

	resp, err := svc.Chat(context.Background(), portfolio.ChatRequest{Message: "  Hello "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Reply != "canned from cache" {
		t.Errorf("expected cached reply to be served verbatim, got %q", resp.Reply)
	}
}

func TestChatCacheMissComputesAndStores(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cache := &fakeReplyCache{}
	svc := New(log.NewLogger(), testProfile(), cache)

	resp, err := svc.Chat(context.Background(), portfolio.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := selectReply(testProfile(), "hello")
	if resp.Reply != want {
		t.Errorf("cache miss should fall through to the selector: got %q, want %q", resp.Reply, want)
	}
	if cache.sets != 1 || cache.store["chat:reply:hello"] != want {
		t.Errorf("computed reply should be stored under the normalized key, store = %v", cache.store)
	}
}

func TestChatSurvivesCacheFailure(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cache := &fakeReplyCache{err: errors.New("dial tcp: connection refused")}
	svc := New(log.NewLogger(), testProfile(), cache)

	resp, err := svc.Chat(context.Background(), portfolio.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("a down cache must never fail the request, got %v", err)
	}

	want := selectReply(testProfile(), "hello")
	if resp.Reply != want {
		t.Errorf("expected computed reply despite cache errors: got %q, want %q", resp.Reply, want)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	svc := New(log.NewLogger(), testProfile(), nil)

	_, err := svc.Chat(context.Background(), portfolio.ChatRequest{Message: ""})
	if !errors.Is(err, portfolio.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestChatIgnoresHistory(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	svc := New(log.NewLogger(), testProfile(), nil)

	withHistory, err := svc.Chat(context.Background(), portfolio.ChatRequest{
		Message: "hello",
		History: []map[string]interface{}{{"role": "user", "content": "skills"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withoutHistory, err := svc.Chat(context.Background(), portfolio.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withHistory.Reply != withoutHistory.Reply {
		t.Errorf("history must not influence the reply: %q vs %q", withHistory.Reply, withoutHistory.Reply)
	}
}
