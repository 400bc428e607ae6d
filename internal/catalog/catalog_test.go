package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"mesnato/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 6 {
		t.Fatalf("default catalog has %d products, want 6", c.Len())
	}

	product, err := c.FindByName("Suvi Vrat")
	if err != nil {
		t.Fatalf("FindByName(Suvi Vrat) failed: %v", err)
	}
	if product.Price != "1500 RSD" {
		t.Errorf("Suvi Vrat price = %q, want %q", product.Price, "1500 RSD")
	}
	if product.Badge != "Popularno" {
		t.Errorf("Suvi Vrat badge = %q, want %q", product.Badge, "Popularno")
	}

	if _, err := c.FindByName("Kulen"); err != ErrProductNotFound {
		t.Errorf("FindByName(Kulen) error = %v, want ErrProductNotFound", err)
	}
}

func TestBestSellers(t *testing.T) {
	c := Default()

	best := c.BestSellers()
	if len(best) != 3 {
		t.Fatalf("BestSellers returned %d products, want 3", len(best))
	}

	want := []string{"Suvi Vrat", "Pečenica", "Dimljena Butkica"}
	for i, name := range want {
		if best[i].Name != name {
			t.Errorf("best seller %d = %q, want %q", i, best[i].Name, name)
		}
	}

	small := New([]domain.Product{{Name: "Mast", Price: "250 RSD"}})
	if got := small.BestSellers(); len(got) != 1 {
		t.Errorf("BestSellers on a one-product catalog returned %d products", len(got))
	}
}

func TestProductsReturnsACopy(t *testing.T) {
	c := Default()

	products := c.Products()
	products[0].Price = "1 RSD"

	fresh, err := c.FindByName("Suvi Vrat")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if fresh.Price != "1500 RSD" {
		t.Errorf("catalog was mutated through Products(): price = %q", fresh.Price)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	content := `products:
  - name: Suvi Vrat
    cut: Suvo meso
    price: 1500 RSD
    origin: Srbija
  - name: Mast
    cut: Tradicionalna mast
    price: 250 RSD
    origin: Srbija
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("loaded catalog has %d products, want 2", c.Len())
	}

	product, err := c.FindByName("Mast")
	if err != nil {
		t.Fatalf("FindByName(Mast) failed: %v", err)
	}
	if product.Price != "250 RSD" {
		t.Errorf("Mast price = %q, want %q", product.Price, "250 RSD")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile("/nonexistent/catalog.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("products: []\n"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("expected an error for an empty catalog")
	}

	malformed := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(malformed, []byte("products: {not a list"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := LoadFile(malformed); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
