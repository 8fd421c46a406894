package harvest

import (
	"errors"
	"strings"
	"testing"
)

const sampleAverages = "2.5e-08\t4.0e-08\t6.2e-08\t8.0e-08\t9.1e-08\t1.1e-07\n"

const sampleBody = "chr\trs\tps\tp_wald\tGQS\tspacing\tcount\tmonot\tvbal1\n" +
	"1\trs101\t10232\t1.2e-09\t4.5\t1500\t62\t0.8\t0.35\n" +
	"1\trs102\t10500\t0.2\tNone\tNone\tNone\tNone\tNone\n" +
	"2\trs201\t99000\t3e-07\t3.2\t2500\t40\t0.5\t0.2\n"

func TestReadHarvProcessed(t *testing.T) {
	markers, averages, err := ReadHarvProcessed(strings.NewReader(sampleAverages + sampleBody))
	if err != nil {
		t.Fatal(err)
	}

	if len(averages) != 6 {
		t.Fatalf("expected 6 top-peak averages, got %d", len(averages))
	}
	if averages[0] != 2.5e-08 || averages[5] != 1.1e-07 {
		t.Error("top-peak averages parsed incorrectly:", averages)
	}

	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}

	m := markers[0]
	if m.Chromosome != 1 || m.Position != 10232 || m.PWald != 1.2e-09 {
		t.Error("first marker parsed incorrectly:", m)
	}
	if !m.GQS.Valid || m.GQS.Float64 != 4.5 {
		t.Error("expected GQS 4.5, got", m.GQS)
	}
	if !m.Count.Valid || m.Count.Float64 != 62 {
		t.Error("expected count 62, got", m.Count)
	}

	if markers[1].GQS.Valid {
		t.Error("None GQS should be missing, got", markers[1].GQS)
	}
	if markers[1].Spacing.Valid || markers[1].Vbal.Valid {
		t.Error("None harvester fields should be missing")
	}

	if markers[2].Chromosome != 2 {
		t.Error("expected chromosome 2, got", markers[2].Chromosome)
	}
}

func TestColumnsResolvedByName(t *testing.T) {
	// same fields, shuffled column order
	body := "ps\tchr\tvbal1\tp_wald\tmonot\tGQS\tcount\tspacing\n" +
		"10232\t1\t0.35\t1.2e-09\t0.8\t4.5\t62\t1500\n"

	markers, _, err := ReadHarvProcessed(strings.NewReader(sampleAverages + body))
	if err != nil {
		t.Fatal(err)
	}

	m := markers[0]
	if m.Chromosome != 1 || m.Position != 10232 || !m.Vbal.Valid || m.Vbal.Float64 != 0.35 {
		t.Error("shuffled columns parsed incorrectly:", m)
	}
}

func TestCommaDelimitedVariant(t *testing.T) {
	commas := strings.ReplaceAll(sampleAverages+sampleBody, "\t", ",")

	markers, averages, err := ReadHarvProcessed(strings.NewReader(commas))
	if err != nil {
		t.Fatal(err)
	}
	if len(markers) != 3 || len(averages) != 6 {
		t.Errorf("comma-delimited variant: got %d markers, %d averages", len(markers), len(averages))
	}
}

func TestMissingColumn(t *testing.T) {
	body := "chr\tps\tp_wald\tGQS\tspacing\tcount\tmonot\n" +
		"1\t10232\t1.2e-09\t4.5\t1500\t62\t0.8\n"

	if _, _, err := ReadHarvProcessed(strings.NewReader(sampleAverages + body)); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected ErrMalformedInput for missing vbal1 column, got", err)
	}
}

func TestNonNumericField(t *testing.T) {
	body := "chr\tps\tp_wald\tGQS\tspacing\tcount\tmonot\tvbal1\n" +
		"1\t10232\t1.2e-09\tstrong\t1500\t62\t0.8\t0.35\n"

	if _, _, err := ReadHarvProcessed(strings.NewReader(sampleAverages + body)); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected ErrMalformedInput for non-numeric GQS, got", err)
	}
}

func TestNonPositivePValue(t *testing.T) {
	body := "chr\tps\tp_wald\tGQS\tspacing\tcount\tmonot\tvbal1\n" +
		"1\t10232\t0\t4.5\t1500\t62\t0.8\t0.35\n"

	if _, _, err := ReadHarvProcessed(strings.NewReader(sampleAverages + body)); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected ErrMalformedInput for zero p_wald, got", err)
	}
}

func TestNonNumericAverages(t *testing.T) {
	if _, _, err := ReadHarvProcessed(strings.NewReader("top5\ttop6\n" + sampleBody)); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected ErrMalformedInput for non-numeric averages, got", err)
	}
}

func TestEmptyBody(t *testing.T) {
	if _, _, err := ReadHarvProcessed(strings.NewReader(sampleAverages)); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected ErrMalformedInput for a file with no marker table, got", err)
	}
}

func TestSentinels(t *testing.T) {
	for _, sentinel := range []string{"None", "NA", ""} {
		got, err := optionalFloat(sentinel)
		if err != nil {
			t.Error(sentinel, err)
		}
		if got.Valid {
			t.Errorf("%q should parse as missing", sentinel)
		}
	}

	got, err := optionalFloat("0")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Valid || got.Float64 != 0 {
		t.Error("a numeric zero is a value, not a missing sentinel")
	}
}
