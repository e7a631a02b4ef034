// Package store provides persistence collaborators for the import engine:
// the YAML-backed live category list and the CSV transaction sink.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/bill-import/internal/categorizer"
	"fjacquet/bill-import/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading and saving of the live category list.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store reading from the given YAML file; an
// empty path falls back to categories.yaml in the standard locations.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

type categoriesFile struct {
	Categories []models.Category `yaml:"categories"`
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "bill-import", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the live category list from YAML. A missing file is
// not an error: the built-in default list is returned so imports work out
// of the box.
func (s *CategoryStore) LoadCategories() ([]models.Category, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Categories file not found: %s, using defaults", filename)
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var parsed categoriesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.WithField("count", len(parsed.Categories)).Debug("Loaded categories")
	return parsed.Categories, nil
}

// SaveCategories writes the live category list back to YAML.
func (s *CategoryStore) SaveCategories(categories []models.Category) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := yaml.Marshal(categoriesFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}

// DefaultCategories returns the built-in live category list: every
// canonical label as an expense category, the income-side labels, and the
// "Other" fallback in both directions.
func DefaultCategories() []models.Category {
	expenseLabels := []string{
		categorizer.CategoryDining,
		categorizer.CategoryShopping,
		categorizer.CategoryTransport,
		categorizer.CategoryEntertainment,
		categorizer.CategoryMedical,
		categorizer.CategoryEducation,
		categorizer.CategoryHousing,
		categorizer.CategoryGift,
	}
	incomeLabels := []string{
		categorizer.CategorySalary,
		categorizer.CategoryInvestment,
		categorizer.CategoryGift,
	}

	var categories []models.Category
	for i, name := range expenseLabels {
		categories = append(categories, models.Category{
			ID:        fmt.Sprintf("exp-%02d", i+1),
			Name:      name,
			Direction: models.Expense,
		})
	}
	for i, name := range incomeLabels {
		categories = append(categories, models.Category{
			ID:        fmt.Sprintf("inc-%02d", i+1),
			Name:      name,
			Direction: models.Income,
		})
	}
	categories = append(categories,
		models.Category{ID: "exp-other", Name: categorizer.Fallback, Direction: models.Expense},
		models.Category{ID: "inc-other", Name: categorizer.Fallback, Direction: models.Income},
	)
	return categories
}
