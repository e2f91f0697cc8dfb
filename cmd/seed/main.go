// Command seed populates a development database with the initial users
// and posts.
package main

import (
	"context"
	"log"

	"juicebox/internal/config"
	"juicebox/internal/database"
	"juicebox/internal/repository"
	"juicebox/internal/service"
)

type seedPost struct {
	author  string
	title   string
	content string
	tags    []string
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)

	users := []service.RegisterInput{
		{Username: "harry", Password: "potter-street-4", Name: "HarryP", Location: "Little Whinging"},
		{Username: "ron", Password: "weasley-is-king", Name: "RonW", Location: "The Burrow"},
		{Username: "hermione", Password: "granger-books1", Name: "HermioneG", Location: "London"},
	}

	ids := map[string]uint{}
	for _, in := range users {
		user, err := userService.Register(ctx, in)
		if err != nil {
			log.Printf("Skipping user %s: %v", in.Username, err)
			continue
		}
		ids[in.Username] = user.ID
		log.Printf("Created user %s (id=%d)", user.Username, user.ID)
	}

	posts := []seedPost{
		{"harry", "First Post", "Down with Voldemort!", []string{"#happy", "#youcandoanything"}},
		{"hermione", "Tutor Needed", "Interested in learning Patronus spell; will pay galleons.", []string{"#happy", "#worst-day-ever"}},
		{"ron", "Quidditch", "Go Gryffindor!", []string{"#happy", "#catmandoanything"}},
		{"harry", "Missed Charms", "Need notes from last Tuesday. Please help.", nil},
	}

	for _, p := range posts {
		authorID, ok := ids[p.author]
		if !ok {
			continue
		}
		post, err := postService.CreatePost(ctx, service.CreatePostInput{
			AuthorID: authorID,
			Title:    p.title,
			Content:  p.content,
			Tags:     p.tags,
		})
		if err != nil {
			log.Printf("Skipping post %q: %v", p.title, err)
			continue
		}
		log.Printf("Created post %q (id=%d, tags=%d)", post.Title, post.ID, len(post.Tags))
	}

	log.Println("Seeding complete")
}
