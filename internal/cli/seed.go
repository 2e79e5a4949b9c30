package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/config"
	"github.com/ElkinVA/MyBiz-Project/internal/content"
	"github.com/ElkinVA/MyBiz-Project/internal/database"
	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture data from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(seedFile)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "fixtures/seed.yml", "fixture file to load")
}

type seedData struct {
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`
	Categories []struct {
		Name         string `yaml:"name"`
		Description  string `yaml:"description"`
		Image        string `yaml:"image"`
		DisplayOrder int    `yaml:"displayOrder"`
	} `yaml:"categories"`
	Products []struct {
		Category         string   `yaml:"category"` // category name, must match above
		Name             string   `yaml:"name"`
		Description      string   `yaml:"description"`
		ShortDescription string   `yaml:"shortDescription"`
		Price            float64  `yaml:"price"`
		OldPrice         *float64 `yaml:"oldPrice"`
		DiscountPrice    *float64 `yaml:"discountPrice"`
		Image            string   `yaml:"image"`
		SKU              string   `yaml:"sku"`
		Brand            string   `yaml:"brand"`
		Stock            int      `yaml:"stock"`
		IsFeatured       bool     `yaml:"isFeatured"`
		IsNew            bool     `yaml:"isNew"`
	} `yaml:"products"`
	Pages []struct {
		Title        string `yaml:"title"`
		Content      string `yaml:"content"`
		Excerpt      string `yaml:"excerpt"`
		ShowInHeader bool   `yaml:"showInHeader"`
		ShowInFooter *bool  `yaml:"showInFooter"`
	} `yaml:"pages"`
	Promotions []struct {
		Title            string `yaml:"title"`
		Image            string `yaml:"image"`
		ShortDescription string `yaml:"shortDescription"`
		ButtonText       string `yaml:"buttonText"`
		ButtonURL        string `yaml:"buttonUrl"`
	} `yaml:"promotions"`
}

func runSeed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.ApplySchema(db); err != nil {
		return err
	}

	ctx := context.Background()
	catalogStore := catalog.NewSQLStore(db)
	contentStore := content.NewSQLStore(db)

	if data.Admin.Email != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx,
			"INSERT INTO admins (email, password_hash, name) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE password_hash = VALUES(password_hash), name = VALUES(name)",
			data.Admin.Email, string(hash), data.Admin.Name)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	categoryIDs := make(map[string]int64, len(data.Categories))
	for _, c := range data.Categories {
		cat := models.Category{
			Name:         c.Name,
			Slug:         slug.Make(c.Name),
			Description:  c.Description,
			Image:        c.Image,
			IsActive:     true,
			DisplayOrder: c.DisplayOrder,
		}
		if err := catalogStore.CreateCategory(ctx, &cat); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = cat.ID
	}

	for _, p := range data.Products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			return fmt.Errorf("product %q references unknown category %q", p.Name, p.Category)
		}
		product := models.Product{
			CategoryID:       categoryID,
			Name:             p.Name,
			Slug:             slug.Make(p.Name),
			Description:      p.Description,
			ShortDescription: p.ShortDescription,
			Price:            p.Price,
			OldPrice:         p.OldPrice,
			DiscountPrice:    p.DiscountPrice,
			Image:            p.Image,
			SKU:              p.SKU,
			Brand:            p.Brand,
			Stock:            p.Stock,
			IsActive:         true,
			IsFeatured:       p.IsFeatured,
			IsNew:            p.IsNew,
			InStock:          p.Stock > 0,
		}
		if err := catalogStore.CreateProduct(ctx, &product); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	for _, pg := range data.Pages {
		page := models.Page{
			Title:        pg.Title,
			Slug:         slug.Make(pg.Title),
			Content:      pg.Content,
			Excerpt:      pg.Excerpt,
			IsActive:     true,
			ShowInHeader: pg.ShowInHeader,
			ShowInFooter: true,
		}
		if pg.ShowInFooter != nil {
			page.ShowInFooter = *pg.ShowInFooter
		}
		if err := contentStore.CreatePage(ctx, &page); err != nil {
			return fmt.Errorf("seed page %q: %w", pg.Title, err)
		}
	}

	for _, pr := range data.Promotions {
		promotion := models.Promotion{
			Title:            pr.Title,
			Slug:             slug.Make(pr.Title),
			Image:            pr.Image,
			ShortDescription: pr.ShortDescription,
			ButtonText:       pr.ButtonText,
			ButtonURL:        pr.ButtonURL,
			IsActive:         true,
		}
		if err := contentStore.CreatePromotion(ctx, &promotion); err != nil {
			return fmt.Errorf("seed promotion %q: %w", pr.Title, err)
		}
	}

	fmt.Printf("seeded %d categories, %d products, %d pages, %d promotions\n",
		len(data.Categories), len(data.Products), len(data.Pages), len(data.Promotions))
	return nil
}
