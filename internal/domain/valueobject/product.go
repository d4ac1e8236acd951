package valueobject

import "regexp"

var (
	productNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-\\_]{3,50}$`)
	productDescPattern = regexp.MustCompile(`^[\p{L}0-9.,\-()%'& ]{10,200}$`)
	productSKUPattern  = regexp.MustCompile(`^[a-zA-Z0-9]{5}$`)
)

// ProductName is a validated product display name (3-50 characters).
type ProductName struct {
	value string
}

func NewProductName(raw string) (ProductName, error) {
	v, err := parseString("product_name", raw, productNamePattern, "must be 3-50 letters, digits, spaces, hyphens or underscores")
	if err != nil {
		return ProductName{}, err
	}
	return ProductName{value: v}, nil
}

func (n ProductName) String() string                { return n.value }
func (n ProductName) IsZero() bool                  { return n.value == "" }
func (n ProductName) Equals(other ProductName) bool { return n.value == other.value }

// ProductDescription is a validated product description (10-200 characters).
type ProductDescription struct {
	value string
}

func NewProductDescription(raw string) (ProductDescription, error) {
	v, err := parseString("product_description", raw, productDescPattern, "must be 10-200 characters of text and basic punctuation")
	if err != nil {
		return ProductDescription{}, err
	}
	return ProductDescription{value: v}, nil
}

func (d ProductDescription) String() string                       { return d.value }
func (d ProductDescription) IsZero() bool                         { return d.value == "" }
func (d ProductDescription) Equals(other ProductDescription) bool { return d.value == other.value }

// ProductSKU is a validated stock keeping unit: exactly five alphanumerics.
type ProductSKU struct {
	value string
}

func NewProductSKU(raw string) (ProductSKU, error) {
	v, err := parseString("product_sku", raw, productSKUPattern, "must be exactly 5 alphanumeric characters")
	if err != nil {
		return ProductSKU{}, err
	}
	return ProductSKU{value: v}, nil
}

func (s ProductSKU) String() string               { return s.value }
func (s ProductSKU) IsZero() bool                 { return s.value == "" }
func (s ProductSKU) Equals(other ProductSKU) bool { return s.value == other.value }
