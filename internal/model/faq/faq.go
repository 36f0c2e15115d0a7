package faq

// Entry is a single curated keyword→answer pair, optionally scoped to a
// career domain.
type Entry struct {
	Keyword string `csv:"keyword" json:"keyword"`
	Answer  string `csv:"answer" json:"answer"`
	Domain  string `csv:"domain" json:"domain,omitempty"`
}

// WildcardDomain matches every entry regardless of its domain.
const WildcardDomain = "All"

// ExampleQuestions provides the default shortcut questions surfaced by the
// frontend.
func ExampleQuestions() []string {
	return []string{
		"What is machine learning?",
		"How to get internships in automation?",
		"What skills needed for robotics?",
	}
}
