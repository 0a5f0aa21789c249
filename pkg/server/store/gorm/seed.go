package gorm

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
)

// Seed populates an empty database with the default admin account and a
// handful of starter posts. It is idempotent: tables that already hold rows
// are left untouched.
func Seed(db *gorm.DB, adminPassword string) error {
	users := NewUsersStore(db)
	posts := NewPostsStore(db)

	userCount, err := users.CountUsers()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount == 0 {
		hash, err := authn.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if _, err := users.CreateUser("admin", hash, model.RoleAdmin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Println("Seeded default admin user")
	}

	postCount, err := posts.CountPosts()
	if err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}
	if postCount == 0 {
		for _, input := range samplePosts() {
			if _, err := posts.CreatePost(input); err != nil {
				return fmt.Errorf("failed to seed post %q: %w", input.Title, err)
			}
		}
		log.Printf("Seeded %d sample posts", len(samplePosts()))
	}

	return nil
}

func samplePosts() []store.PostInput {
	return []store.PostInput{
		{
			Title:    "Getting Started with Microservices Architecture",
			Excerpt:  "A practical introduction to breaking a monolith into independently deployable services, and the tradeoffs that come with it.",
			Content: `<div class="space-y-6"><p>Microservices promise independent deployment, focused teams, and technology freedom. They also bring distributed-systems problems to codebases that never had them before.</p>` +
				`<h2 class="text-2xl font-bold">Where to start</h2>` +
				`<p>Begin with a well-understood seam in your monolith. Extract one service, put a contract in front of it, and run both side by side until the traffic shift is boring.</p>` +
				`<ul class="list-disc pl-6"><li><strong>Own your data:</strong> every service gets its own schema</li>` +
				`<li><strong>Automate deployment:</strong> a service you cannot ship alone is not a microservice</li>` +
				`<li><strong>Plan for failure:</strong> timeouts, retries, and circuit breakers from day one</li></ul></div>`,
			Category: "Architecture",
			Tags:     []string{"microservices", "architecture", "backend"},
			ReadTime: "8 min",
		},
		{
			Title:    "Securing REST APIs with JSON Web Tokens",
			Excerpt:  "Stateless authentication keeps your API horizontally scalable. Here is how token issuance, verification, and role checks fit together.",
			Content: `<div class="space-y-6"><p>A JSON Web Token carries signed claims about the caller, so the server can authenticate requests without a session store.</p>` +
				`<h2 class="text-2xl font-bold">The flow</h2>` +
				`<p>The client exchanges credentials for a token once, then presents the token on every request in the <code>Authorization</code> header. The server verifies the signature and the expiry, and reads the role claim to authorize the call.</p>` +
				`<p>Keep lifetimes short, sign with a strong secret, and never put sensitive data in the claims. The payload is encoded, not encrypted.</p></div>`,
			Category: "Security",
			Tags:     []string{"security", "jwt", "api"},
			ReadTime: "6 min",
		},
		{
			Title:    "Database Indexing Strategies for High Traffic Applications",
			Excerpt:  "Indexes are the cheapest performance win in most applications, and the easiest thing to get wrong. A tour of the patterns that matter.",
			Content: `<div class="space-y-6"><p>When a query slows down under load, the answer is usually an index. When writes slow down, the answer is usually too many of them.</p>` +
				`<h2 class="text-2xl font-bold">Rules of thumb</h2>` +
				`<ul class="list-disc pl-6"><li>Index the columns in your WHERE clauses and JOIN conditions</li>` +
				`<li>Composite indexes serve queries on their leading columns</li>` +
				`<li>Unique indexes are constraints first and performance second</li></ul>` +
				`<p>Measure with <code>EXPLAIN ANALYZE</code> before and after. An index the planner refuses to use is pure write overhead.</p></div>`,
			Category: "Databases",
			Tags:     []string{"postgresql", "performance", "backend"},
			ReadTime: "10 min",
		},
	}
}
