package amounts

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDetect(t *testing.T) {
	t.Run("explicit RD$ amount", func(t *testing.T) {
		det, ok := Detect("Te puedo hacer el trabajo por RD$ 5,000")
		if !ok {
			t.Fatalf("expected a detection")
		}
		if !det.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected 5000, got %s", det.Amount)
		}
		if det.RawMatch != "RD$ 5,000" {
			t.Fatalf("unexpected raw match %q", det.RawMatch)
		}
	})

	t.Run("RD$ without space", func(t *testing.T) {
		det, ok := Detect("RD$3,500 por la extracción")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(3500)) {
			t.Fatalf("expected 3500, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("decimals preserved", func(t *testing.T) {
		det, ok := Detect("Serían RD$ 1,500.50 en total")
		if !ok {
			t.Fatalf("expected a detection")
		}
		if !det.Amount.Equal(decimal.RequireFromString("1500.50")) {
			t.Fatalf("expected 1500.50, got %s", det.Amount)
		}
	})

	t.Run("bare dollar sign", func(t *testing.T) {
		det, ok := Detect("Te cobro $8,000 por todo")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(8000)) {
			t.Fatalf("expected 8000, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("pesos suffix", func(t *testing.T) {
		det, ok := Detect("Son 3,000 pesos")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(3000)) {
			t.Fatalf("expected 3000, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("natural language cost phrase", func(t *testing.T) {
		det, ok := Detect("El costo es 7,500 por la distancia")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(7500)) {
			t.Fatalf("expected 7500, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("below minimum ignored", func(t *testing.T) {
		if _, ok := Detect("Te cobro RD$ 200"); ok {
			t.Fatalf("amounts below the minimum must not be detected")
		}
	})

	t.Run("minimum boundary accepted", func(t *testing.T) {
		det, ok := Detect("Te cobro RD$ 500")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected 500, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("maximum boundary accepted", func(t *testing.T) {
		det, ok := Detect("El total es RD$ 500,000")
		if !ok || !det.Amount.Equal(decimal.NewFromInt(500000)) {
			t.Fatalf("expected 500000, got %v ok=%v", det.Amount, ok)
		}
	})

	t.Run("above maximum ignored", func(t *testing.T) {
		if _, ok := Detect("RD$ 600,000 por el rescate"); ok {
			t.Fatalf("amounts above the maximum must not be detected")
		}
	})

	t.Run("highest of several amounts wins", func(t *testing.T) {
		det, ok := Detect("Puedo hacerlo por RD$1,000 pero te recomiendo RD$5,000 por el equipo")
		if !ok {
			t.Fatalf("expected a detection")
		}
		if !det.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected the highest amount 5000, got %s", det.Amount)
		}
	})

	t.Run("plain text has no amount", func(t *testing.T) {
		if _, ok := Detect("Llego en 20 minutos"); ok {
			t.Fatalf("expected no detection")
		}
	})

	t.Run("empty message", func(t *testing.T) {
		if _, ok := Detect(""); ok {
			t.Fatalf("expected no detection")
		}
	})
}

func TestDetectAll(t *testing.T) {
	t.Run("sorted descending and deduplicated", func(t *testing.T) {
		all := DetectAll("RD$1,000 o RD$5,000 o RD$3,000 o RD$ 5,000")
		if len(all) != 3 {
			t.Fatalf("expected 3 distinct amounts, got %d", len(all))
		}
		want := []int64{5000, 3000, 1000}
		for i, w := range want {
			if !all[i].Amount.Equal(decimal.NewFromInt(w)) {
				t.Fatalf("position %d: expected %d, got %s", i, w, all[i].Amount)
			}
		}
	})

	t.Run("invalid amounts filtered out", func(t *testing.T) {
		all := DetectAll("RD$ 100 o RD$ 2,000 o RD$ 900,000")
		if len(all) != 1 || !all[0].Amount.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected only 2000, got %+v", all)
		}
	})

	t.Run("no amounts", func(t *testing.T) {
		if all := DetectAll("Voy en camino"); len(all) != 0 {
			t.Fatalf("expected no detections, got %+v", all)
		}
	})
}

func TestIsAmountMessage(t *testing.T) {
	if !IsAmountMessage("Serían RD$6,000 por la extracción") {
		t.Fatalf("expected an amount message")
	}
	if IsAmountMessage("Ya casi llego") {
		t.Fatalf("expected a plain message")
	}
}

func TestIsValidNegotiationAmount(t *testing.T) {
	cases := []struct {
		amount string
		want   bool
	}{
		{"499.99", false},
		{"500", true},
		{"1500.50", true},
		{"500000", true},
		{"500000.01", false},
	}
	for _, c := range cases {
		if got := IsValidNegotiationAmount(decimal.RequireFromString(c.amount)); got != c.want {
			t.Fatalf("amount %s: expected %v, got %v", c.amount, c.want, got)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"500", "RD$ 500.00"},
		{"1500.5", "RD$ 1,500.50"},
		{"500000", "RD$ 500,000.00"},
		{"1234567.89", "RD$ 1,234,567.89"},
	}
	for _, c := range cases {
		if got := Format(decimal.RequireFromString(c.amount)); got != c.want {
			t.Fatalf("amount %s: expected %q, got %q", c.amount, c.want, got)
		}
	}
}
