package config

import (
	"os"
	"strconv"
)

const (
	defaultPort        = "8080"
	defaultTaxRate     = 0.08
	defaultShippingFee = 500 // minor units, flat fee
)

// Port returns the HTTP listen port.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return defaultPort
}

// DatabaseDSN returns the Postgres connection string.
func DatabaseDSN() string {
	return os.Getenv("DATABASE_URL")
}

// JWTSecret returns the HMAC secret shared with the identity provider.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AdminAPIKey guards the /admin surface.
func AdminAPIKey() string {
	return os.Getenv("ADMIN_API_KEY")
}

// CloudinaryURL configures the object-storage client.
func CloudinaryURL() string {
	return os.Getenv("CLOUDINARY_URL")
}

// TaxRate is the fraction applied to the cart subtotal on every recompute.
func TaxRate() float64 {
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			return rate
		}
	}
	return defaultTaxRate
}

// ShippingFee is the flat shipping charge in minor currency units,
// waived when the cart is empty.
func ShippingFee() int {
	if v := os.Getenv("SHIPPING_FEE"); v != "" {
		if fee, err := strconv.Atoi(v); err == nil && fee >= 0 {
			return fee
		}
	}
	return defaultShippingFee
}
