package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Test struct mirroring the order payload's customer block
type testCustomer struct {
	Name    string `json:"name" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	Note    string `json:"note"`
}

func TestProperty_BlankFieldsAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a field made of whitespace fails notblank", prop.ForAll(
		func(includeName bool, includePhone bool, includeAddress bool) bool {
			customer := testCustomer{Name: "  ", Phone: "\t", Address: " \n "}
			if includeName {
				customer.Name = "Petar Petrović"
			}
			if includePhone {
				customer.Phone = "060 000 000"
			}
			if includeAddress {
				customer.Address = "Ulica 1"
			}

			err := ValidateRequest(&customer)
			allPresent := includeName && includePhone && includeAddress

			if allPresent {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidationErrorsUseJSONFieldNames(t *testing.T) {
	customer := testCustomer{Name: "Petar", Phone: "", Address: ""}

	err := ValidateRequest(&customer)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 2 {
		t.Fatalf("got %d validation errors, want 2: %+v", len(formatted), formatted)
	}
	if formatted[0].Field != "phone" || formatted[1].Field != "address" {
		t.Errorf("fields = [%q, %q], want json names in struct order", formatted[0].Field, formatted[1].Field)
	}
	for _, fe := range formatted {
		if fe.Message != "This field is required" {
			t.Errorf("message for %q = %q", fe.Field, fe.Message)
		}
	}
}

func TestDecodeAndValidate(t *testing.T) {
	body, _ := json.Marshal(map[string]string{
		"name":    "Petar Petrović",
		"phone":   "060 000 000",
		"address": "Ulica 1, Beograd",
	})
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var customer testCustomer
	if err := DecodeAndValidate(req, &customer); err != nil {
		t.Fatalf("DecodeAndValidate failed: %v", err)
	}
	if customer.Name != "Petar Petrović" {
		t.Errorf("name = %q", customer.Name)
	}

	malformed := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte("{not json")))
	var target testCustomer
	if err := DecodeAndValidate(malformed, &target); err == nil {
		t.Error("expected a decode error for malformed JSON")
	}
}
