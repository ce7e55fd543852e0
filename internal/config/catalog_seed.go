package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SeedBook struct {
	ISBN    string `yaml:"isbn"`
	Author  string `yaml:"author"`
	Title   string `yaml:"title"`
	Price   string `yaml:"price"`
	Subject string `yaml:"subject"`
}

type CatalogSeed struct {
	Books []SeedBook `yaml:"books"`
}

func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	seed := &CatalogSeed{}
	err = yaml.Unmarshal(data, seed)
	if err != nil {
		return nil, err
	}

	for i, b := range seed.Books {
		if b.ISBN == "" || b.Title == "" || b.Price == "" {
			return nil, fmt.Errorf("seed book #%d: isbn, title and price are required", i)
		}
	}

	return seed, nil
}
