package catalog

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DefaultProducts is the storefront's built-in assortment.
func DefaultProducts() []Product {
	return []Product{
		NewProduct("СМЕТАНА", "300г", QuantityOf(1), WithImage("smetana")),
		NewProduct("МАЛИНА", "125г", QuantityOf(1), WithImage("malina")),
		NewProduct("КУКУРУЗА", "212мл", QuantityOf(1), WithImage("kukuruza")),
		NewProduct("ХЛЕБ", "320г", QuantityOf(1), WithImage("hleb")),
		NewProduct("ПОМИДОРЫ", "1кг", QuantityOf(1), WithImage("pomidor")),
		NewProduct("ОГУРЦЫ", "1кг", QuantityOf(1), WithImage("ogurec")),
	}
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Unit            string `yaml:"unit"`
	Quantity        int    `yaml:"quantity"`
	Volume          string `yaml:"volume"`
	Weight          string `yaml:"weight"`
	DisplayQuantity string `yaml:"display_quantity"`
	Image           string `yaml:"image"`
	Selectable      *bool  `yaml:"selectable"`
}

// LoadSeedFile reads a YAML product list from disk.
func LoadSeedFile(path string) ([]Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes a YAML product list. All row problems are returned together.
func ParseSeed(raw []byte) ([]Product, error) {
	var file seedFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog seed has no products")
	}

	products := make([]Product, 0, len(file.Products))
	var errs error
	for i, row := range file.Products {
		p, err := row.toProduct()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d: %w", i, err))
			continue
		}
		products = append(products, p)
	}
	if errs != nil {
		return nil, errs
	}
	return products, nil
}

func (s seedProduct) toProduct() (Product, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return Product{}, fmt.Errorf("name is required")
	}

	unit := enums.ProductUnitQuantity
	if s.Unit != "" {
		parsed, err := enums.ParseProductUnit(s.Unit)
		if err != nil {
			return Product{}, err
		}
		unit = parsed
	}

	var measure Measure
	switch unit {
	case enums.ProductUnitQuantity:
		qty := s.Quantity
		if qty == 0 {
			qty = defaultQuantity
		}
		if qty < 0 {
			return Product{}, fmt.Errorf("quantity must be positive")
		}
		measure = QuantityOf(qty)
	case enums.ProductUnitVolume:
		amount, err := parseAmount(s.Volume)
		if err != nil {
			return Product{}, fmt.Errorf("volume: %w", err)
		}
		measure = VolumeOf(amount)
	case enums.ProductUnitWeight:
		amount, err := parseAmount(s.Weight)
		if err != nil {
			return Product{}, fmt.Errorf("weight: %w", err)
		}
		measure = WeightOf(amount)
	}

	var opts []ProductOption
	if s.ID != "" {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return Product{}, fmt.Errorf("id: %w", err)
		}
		opts = append(opts, WithID(id))
	}
	if s.Image != "" {
		opts = append(opts, WithImage(s.Image))
	}
	if s.Selectable != nil && !*s.Selectable {
		opts = append(opts, NotSelectable())
	}
	return NewProduct(name, s.DisplayQuantity, measure, opts...), nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("must not be negative")
	}
	return amount, nil
}
