package entity

// Profile is the static record describing the portfolio owner. It is built
// once at startup and never mutated afterwards; services receive it by value.
type Profile struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Tag      string    `json:"tag"`
	Skills   SkillSet  `json:"skills"`
	Projects []Project `json:"projects"`
	About    []string  `json:"about"`
	Contact  Contact   `json:"contact"`
}

// SkillSet groups skill names by category. Slice order is presentation order.
type SkillSet struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	AI       []string `json:"ai"`
	Database []string `json:"database"`
	Others   []string `json:"others"`
}

type Project struct {
	Name       string   `json:"name"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
