// Package seed populates the collections with demo data for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"clubverse/internal/models"
	"clubverse/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Options configuration for the seeder
type Options struct {
	NumAdmins   int
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var clubThemes = []string{
	"Chess", "Debate", "Robotics", "Photography", "Drama", "Astronomy",
	"Coding", "Music", "Hiking", "Film", "Literature", "Cooking",
	"Esports", "Quiz", "Dance", "Environment", "Entrepreneurship",
}

var postTemplates = []string{
	"%s Workshop", "Weekly %s Meetup", "%s Tournament", "Intro to %s",
	"%s Showcase Night", "%s Jam Session", "Guest Talk: %s",
}

// Seeder writes demo data through the same collections the server uses, so
// every record goes through the durable persist path.
type Seeder struct {
	collections *store.Collections
	r           *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided collections.
func NewSeeder(collections *store.Collections) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Seeder{
		collections: collections,
		r:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates the collections with demo data. All seeded accounts share
// the password "password123".
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d admins, %d users, %d posts...", opts.NumAdmins, opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear collections: %w", err)
		}
	}

	admins, err := s.CreateAdmins(opts.NumAdmins)
	if err != nil {
		return fmt.Errorf("create admins: %w", err)
	}
	log.Printf("created %d admins", len(admins))

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := s.CreatePosts(admins, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := s.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("create engagement: %w", err)
	}

	log.Println("Seeding completed.")
	return nil
}

// ClearAll empties every collection.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, clear := range []func() error{
		s.collections.Users.Clear,
		s.collections.Admins.Clear,
		s.collections.Posts.Clear,
		s.collections.Likes.Clear,
		s.collections.Saves.Clear,
		s.collections.Comments.Clear,
	} {
		if err := clear(); err != nil {
			return err
		}
	}
	return nil
}

// CreateAdmins creates n club admins, one club each.
func (s *Seeder) CreateAdmins(n int) ([]models.Admin, error) {
	hash := demoPasswordHash()

	admins := make([]models.Admin, 0, n)
	for i := 0; i < n; i++ {
		theme := clubThemes[i%len(clubThemes)]
		admin := models.Admin{
			ID:        uuid.New().String(),
			Name:      gofakeit.Name(),
			Email:     fmt.Sprintf("%s.admin%d@clubverse.dev", strings.ToLower(theme), i),
			Password:  hash,
			Role:      models.RoleAdmin,
			ClubName:  theme + " Club",
			CreatedAt: s.pastTime(365),
		}
		if err := s.collections.Admins.Append(admin); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, nil
}

// CreateUsers creates n regular users.
func (s *Seeder) CreateUsers(n int) ([]models.User, error) {
	hash := demoPasswordHash()

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			ID:        uuid.New().String(),
			Name:      gofakeit.Name(),
			Email:     fmt.Sprintf("user%d@clubverse.dev", i),
			Password:  hash,
			Role:      models.RoleUser,
			CreatedAt: s.pastTime(365),
		}
		if err := s.collections.Users.Append(user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreatePosts creates n posts spread across the given admins. The feed is
// newest-first by stored order, so posts are built with a spread of created
// times, sorted, and prepended oldest-first.
func (s *Seeder) CreatePosts(admins []models.Admin, n int) ([]models.Post, error) {
	if len(admins) == 0 {
		return nil, nil
	}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		admin := admins[s.r.Intn(len(admins))]
		theme := strings.TrimSuffix(admin.ClubName, " Club")
		template := postTemplates[s.r.Intn(len(postTemplates))]

		posts = append(posts, models.Post{
			ID:          uuid.New().String(),
			AdminID:     admin.ID,
			ClubName:    admin.ClubName,
			Title:       fmt.Sprintf(template, theme),
			Description: gofakeit.Paragraph(1, 3, 8, " "),
			Coordinators: []models.Coordinator{
				{Name: gofakeit.Name(), Email: gofakeit.Email(), Phone: gofakeit.Phone()},
			},
			Image:     fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			CreatedAt: s.pastTime(90),
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
	for _, post := range posts {
		if err := s.collections.Posts.Prepend(post); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// CreateEngagement sprinkles likes, saves, and comments from users over the
// posts. Roughly a third of the user/post pairs get a like, a fifth a save.
func (s *Seeder) CreateEngagement(users []models.User, posts []models.Post) error {
	likes, saves, comments := 0, 0, 0
	for _, user := range users {
		for _, post := range posts {
			key := models.EngagementKey{UserID: user.ID, PostID: post.ID}
			entry := models.Engagement{
				EngagementKey: key,
				ClubName:      post.ClubName,
				Title:         post.Title,
				Timestamp:     s.pastTime(30),
			}
			match := func(e models.Engagement) bool {
				return e.EngagementKey == key
			}

			if s.r.Intn(3) == 0 {
				added, err := s.collections.Likes.Toggle(match, entry)
				if err != nil {
					return err
				}
				if added {
					likes++
				}
			}
			if s.r.Intn(5) == 0 {
				added, err := s.collections.Saves.Toggle(match, entry)
				if err != nil {
					return err
				}
				if added {
					saves++
				}
			}
			if s.r.Intn(6) == 0 {
				comment := models.Comment{
					CommentID: uuid.New().String(),
					PostID:    post.ID,
					UserID:    user.ID,
					UserName:  user.Name,
					Text:      gofakeit.Sentence(10),
					CreatedAt: s.pastTime(30),
				}
				if err := s.collections.Comments.Append(comment); err != nil {
					return err
				}
				comments++
			}
		}
	}
	log.Printf("created %d likes, %d saves, %d comments", likes, saves, comments)
	return nil
}

// pastTime returns a time up to maxDays in the past.
func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.r.Intn(maxDays)
	hoursBack := s.r.Intn(24)
	minsBack := s.r.Intn(60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}

func demoPasswordHash() string {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hashed)
}
