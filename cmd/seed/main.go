package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"poppys/internal/config"
	"poppys/internal/db"
	"poppys/internal/errors"
	"poppys/internal/model"
	"poppys/internal/repository"
)

const defaultCatalogURL = "https://raw.githubusercontent.com/poppys-premium/fixtures/main/products.json"

// SeedProductData represents one catalog item in the fixture file.
type SeedProductData struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	ImageURL    string  `json:"image_url"`
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting catalog seed")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	client, database, err := db.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	catalogURL := defaultCatalogURL
	if v := os.Getenv("CATALOG_URL"); v != "" {
		catalogURL = v
	}

	logger.Info().Str("url", catalogURL).Msg("fetching catalog fixture")
	items, err := fetchCatalog(catalogURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("fetch catalog")
	}
	logger.Info().Int("items", len(items)).Msg("fetched catalog fixture")

	repo := repository.NewProductRepository(database)
	created, updated, err := seedProducts(context.Background(), repo, items)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed products")
	}

	logger.Info().
		Int("created", created).
		Int("updated", updated).
		Msg("seed completed")
}

// fetchCatalog fetches catalog items from the fixture URL.
func fetchCatalog(url string) ([]SeedProductData, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch fixture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fixture returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read fixture body: %w", err)
	}

	var items []SeedProductData
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return items, nil
}

// seedProducts creates new catalog items or refreshes existing ones, keyed by name.
func seedProducts(ctx context.Context, repo repository.ProductRepository, items []SeedProductData) (created, updated int, err error) {
	for _, item := range items {
		existing, err := repo.FindByName(ctx, item.Name)
		if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
			return created, updated, fmt.Errorf("check product %q: %w", item.Name, err)
		}

		if existing != nil {
			params := repository.UpdateProductParams{
				Description: &item.Description,
				Category:    &item.Category,
				Price:       &item.Price,
				Quantity:    &item.Quantity,
			}
			if item.ImageURL != "" {
				params.ImageURL = &item.ImageURL
			}
			if _, err := repo.Update(ctx, existing.ID, params); err != nil {
				return created, updated, fmt.Errorf("update product %q: %w", item.Name, err)
			}
			updated++
			continue
		}

		product := &model.Product{
			SKU:         uuid.NewString(),
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Price:       item.Price,
			Quantity:    item.Quantity,
			ImageURL:    item.ImageURL,
		}
		if err := repo.Create(ctx, product); err != nil {
			return created, updated, fmt.Errorf("create product %q: %w", item.Name, err)
		}
		created++
	}
	return created, updated, nil
}
