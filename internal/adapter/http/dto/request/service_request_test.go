package request

import (
	"testing"

	"gruas_rd/internal/domain/entities"
)

func TestCreateServiceRequest_ResolveCategory(t *testing.T) {
	r := CreateServiceRequest{Category: " extraccion "}
	if got := r.ResolveCategory(); got != entities.ServiceCategoryExtraccion {
		t.Fatalf("expected extraccion, got %q", got)
	}

	r2 := CreateServiceRequest{Category: "   "}
	if got := r2.ResolveCategory(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCreateServiceRequest_ResolveSubtype(t *testing.T) {
	r := CreateServiceRequest{Subtype: " extraccion_zanja "}
	if got := r.ResolveSubtype(); got != entities.ServiceSubtypeExtraccionZanja {
		t.Fatalf("expected extraccion_zanja, got %q", got)
	}
}
