package annotations

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleAnnotations = "taxon\thost\tcountry\r\n" +
	"# comment rows are skipped\n" +
	"A/1\thuman\tPeru\n" +
	"A/2\tbat\tChile\n" +
	"\n" +
	"A/3\thuman\t\n" +
	"A/4\t\tPeru\n" +
	"A/5\tpig\n" +
	"A/6\n"

func TestReadReturnsDistinctValuesInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	hosts, err := Read(strings.NewReader(sampleAnnotations), "host")
	if err != nil {
		t.Fatalf("read host: %v", err)
	}
	if !reflect.DeepEqual(hosts, []string{"human", "bat", "pig"}) {
		t.Fatalf("unexpected hosts %v", hosts)
	}

	countries, err := Read(strings.NewReader(sampleAnnotations), "country")
	if err != nil {
		t.Fatalf("read country: %v", err)
	}
	if !reflect.DeepEqual(countries, []string{"Peru", "Chile"}) {
		t.Fatalf("unexpected countries %v", countries)
	}
}

func TestReadRejectsUnknownOrTaxonColumn(t *testing.T) {
	t.Parallel()

	for _, attribute := range []string{"colour", "taxon", ""} {
		_, err := Read(strings.NewReader(sampleAnnotations), attribute)
		if !errors.Is(err, ErrAttributeNotFound) {
			t.Fatalf("%q: expected attribute not found, got %v", attribute, err)
		}
	}

	if _, err := Read(strings.NewReader(""), "host"); !errors.Is(err, ErrAttributeNotFound) {
		t.Fatalf("expected empty input to fail, got %v", err)
	}
}

func TestAttributesListsHeaderColumns(t *testing.T) {
	t.Parallel()

	attributes, err := Attributes(strings.NewReader(sampleAnnotations))
	if err != nil {
		t.Fatalf("attributes: %v", err)
	}
	if !reflect.DeepEqual(attributes, []string{"host", "country"}) {
		t.Fatalf("unexpected attributes %v", attributes)
	}
}
