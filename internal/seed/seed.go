package seed

import (
	"fmt"
	"log/slog"
	"time"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configure a seeding run.
type Options struct {
	NumUsers     int
	PostsPerUser int
	// MaxDays bounds how far back generated timestamps reach.
	MaxDays int
	// Clean truncates all seeded tables before inserting.
	Clean bool
	// Password is the shared plaintext password for every seeded account.
	// Defaults to "Ripple-Dev-Pass1!" when empty.
	Password string
	// Seed fixes the RNG for reproducible runs; 0 uses the clock.
	Seed int64
}

const defaultPassword = "Ripple-Dev-Pass1!"

func (o Options) password() string {
	if o.Password == "" {
		return defaultPassword
	}
	return o.Password
}

func (o Options) randomSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

// Run populates the database with a small social mesh: users following each
// other, posts, likes, comments, and the notifications those interactions
// would have produced.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = 5
	}

	if opts.Clean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	f, err := NewFactory(db, opts)
	if err != nil {
		return err
	}

	started := time.Now()

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumUsers*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	if err := f.weaveSocialMesh(users, posts); err != nil {
		return err
	}

	slog.Info("seeding complete",
		"users", len(users),
		"posts", len(posts),
		"elapsed", time.Since(started),
		"password", opts.password())
	return nil
}

// weaveSocialMesh wires follows, likes, comments, and matching notifications
// between the generated users.
func (f *Factory) weaveSocialMesh(users []*models.User, posts []*models.Post) error {
	// Each user follows roughly a third of the others.
	for _, follower := range users {
		for _, followee := range users {
			if follower.ID == followee.ID || f.rnd.Intn(3) != 0 {
				continue
			}
			if err := f.CreateFollow(follower, followee); err != nil {
				return err
			}
			if err := f.CreateNotification(models.NotificationKindFollow, follower, followee, nil); err != nil {
				return err
			}
		}
	}

	authorByPost := make(map[uint]*models.User, len(posts))
	userByID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	for _, p := range posts {
		authorByPost[p.ID] = userByID[p.UserID]
	}

	for _, post := range posts {
		author := authorByPost[post.ID]
		for _, user := range users {
			if user.ID == author.ID {
				continue
			}
			if f.rnd.Intn(4) == 0 {
				if err := f.CreateLike(user, post); err != nil {
					return err
				}
				if err := f.CreateNotification(models.NotificationKindLike, user, author, post); err != nil {
					return err
				}
			}
			if f.rnd.Intn(6) == 0 {
				if _, err := f.CreateComment(user, post); err != nil {
					return err
				}
				if err := f.CreateNotification(models.NotificationKindComment, user, author, post); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Clean removes all rows from seeded tables. Ordered so foreign keys never
// dangle mid-delete.
func Clean(db *gorm.DB) error {
	tables := []string{"notifications", "likes", "comments", "follows", "posts", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clean table %s: %w", table, err)
		}
	}
	return nil
}
