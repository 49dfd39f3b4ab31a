package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"shelter-dashboard/pkg/config"
	"shelter-dashboard/pkg/database"
	"shelter-dashboard/pkg/httpclient"
	"shelter-dashboard/pkg/jwt"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/models"
	"shelter-dashboard/pkg/s3"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedPost struct {
	topic    string
	html     string
	category string
	approved bool
	views    int
}

var seedCategories = []string{"Adoption", "Events", "Volunteering", "Lost & Found"}

var seedPosts = []seedPost{
	{"Meet Biscuit, our senior beagle", "<p>Biscuit loves long naps and short walks.</p>", "Adoption", false, 0},
	{"Saturday adoption fair", "<p>Join us downtown from 10am.</p>", "Events", true, 42},
	{"Weekend dog walkers wanted", "<p>Two hours, any Saturday.</p>", "Volunteering", false, 0},
	{"Found: grey tabby near the park", "<p>Microchipped, very friendly.</p>", "Lost & Found", true, 7},
	{"Kitten season is here", "<p>We need foster homes for 12 kittens.</p>", "Adoption", false, 0},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if cfg.S3Enabled() {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v (seeding without thumbnails)", err)
			s3Client = nil
		}
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	token, err := jwtService.GenerateToken("seed-reviewer", jwt.RoleReviewer)
	if err != nil {
		log.Error("Failed to issue reviewer token: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
	log.Info("Reviewer token: %s", token)
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	categoryIDs := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		category := models.CategoryBlog{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", name, err)
		}
		categoryIDs[name] = category.ID
	}

	client := httpclient.New(httpclient.Config{Timeout: 30 * time.Second}, log)
	authorID := uuid.New().String()

	for i, sp := range seedPosts {
		var existing int64
		if err := db.Model(&models.Post{}).Where("topic = ?", sp.topic).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.Info("Skipping existing post %q", sp.topic)
			continue
		}

		categoryID := categoryIDs[sp.category]
		post := models.Post{
			AuthorID:    authorID,
			Topic:       sp.topic,
			HTMLContent: sp.html,
			CategoryID:  &categoryID,
			Status:      models.StatusPending,
			Views:       sp.views,
		}
		if sp.approved {
			post.Status = models.StatusApproved
		}

		if s3Client != nil {
			url, err := uploadThumbnail(client, s3Client, i)
			if err != nil {
				log.Warn("Thumbnail for %q skipped: %v", sp.topic, err)
			} else {
				post.Thumbnail = url
			}
		}

		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to seed post %q: %w", sp.topic, err)
		}
		log.Info("Seeded post %s (%s)", post.ID, post.Status)
	}
	return nil
}

func uploadThumbnail(client *http.Client, s3Client *s3.Client, index int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://cataas.com/cat", nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	mt := mimetype.Detect(data)
	key := fmt.Sprintf("thumbnails/seed/%d-%s%s", index, uuid.New().String(), mt.Extension())
	return s3Client.Upload(ctx, key, bytes.NewReader(data), mt.String())
}
