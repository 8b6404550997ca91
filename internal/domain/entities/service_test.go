package entities

import "testing"

func TestServiceRequiresNegotiation(t *testing.T) {
	cases := []struct {
		name     string
		category ServiceCategory
		subtype  ServiceSubtype
		want     bool
	}{
		{"extraccion always negotiates", ServiceCategoryExtraccion, "", true},
		{"extraction subtype under specialized towing", ServiceCategoryRemolqueEspecializado, ServiceSubtypeExtraccionVolcado, true},
		{"zanja subtype", ServiceCategoryRemolqueEspecializado, ServiceSubtypeExtraccionZanja, true},
		{"standard towing has a fixed tariff", ServiceCategoryRemolqueEstandar, "", false},
		{"motorcycle towing", ServiceCategoryRemolqueMotocicletas, "", false},
		{"roadside assistance", ServiceCategoryAuxilioVial, "", false},
		{"specialized towing without extraction subtype", ServiceCategoryRemolqueEspecializado, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ServiceRequiresNegotiation(c.category, c.subtype); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestIsValidServiceCategory(t *testing.T) {
	for _, c := range []ServiceCategory{
		ServiceCategoryExtraccion, ServiceCategoryRemolqueEstandar, ServiceCategoryRemolqueMotocicletas,
		ServiceCategoryRemolqueEspecializado, ServiceCategoryAuxilioVial,
	} {
		if !IsValidServiceCategory(c) {
			t.Fatalf("expected %s to be valid", c)
		}
	}
	if IsValidServiceCategory("grua_aerea") {
		t.Fatalf("unknown category must be invalid")
	}
}

func TestIsExtractionSubtype(t *testing.T) {
	if !IsExtractionSubtype(ServiceSubtypeExtraccionLodo) {
		t.Fatalf("expected extraccion_lodo to be an extraction subtype")
	}
	if IsExtractionSubtype("remolque_plataforma") {
		t.Fatalf("unknown subtype must not classify as extraction")
	}
}
