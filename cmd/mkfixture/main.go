// mkfixture writes a Parquet file of date strings covering every input shape,
// including strings that normalize to invalid and rows with a null raw value.
// Usage: go run ./cmd/mkfixture --out testdata/dates.parquet --rows 200
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// edgeCases are always included, ahead of the generated rows.
var edgeCases = []string{
	"2022-01-01",
	"2020-02-29",
	"2021-02-29",
	"2022-04-31",
	"2022-13-45",
	"2022-1-5",
	"22-01-01",
	"2022-01-01 17:04:03",
	"2022-01-01 17:04:03.1",
	"2022-01-01 17:04:03.1234",
	"2022-01-01 17",
	"2022-01-01 ab:cd",
	"2022-01-01T00:00:00.000Z",
	"2022-01-01T12:30:00+05:30",
	"2022-01-01T12:30:00",
	"2022/01/05",
	"Jan 2, 2006",
	"",
	"   ",
	"not a date",
}

func main() {
	out := flag.String("out", "testdata/dates.parquet", "output parquet")
	rows := flag.Int("rows", 200, "total rows to output")
	seed := flag.Uint64("seed", 1, "random seed")
	nullEvery := flag.Int("null-every", 25, "emit a null raw value every N rows (0 disables)")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	selected := make([]model.DateRow, 0, *rows)
	for i := 0; len(selected) < *rows; i++ {
		id := int64(len(selected) + 1)
		if *nullEvery > 0 && id%int64(*nullEvery) == 0 {
			selected = append(selected, model.DateRow{ID: id})
			continue
		}
		var raw string
		if i < len(edgeCases) {
			raw = edgeCases[i]
		} else {
			raw = randomDate(rng)
		}
		selected = append(selected, model.DateRow{ID: id, Raw: &raw})
	}

	if err := parquetio.WriteDateRows(*out, selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	shapeCounts := make(map[model.Shape]int)
	for i := range selected {
		shapeCounts[normalize.Classify(selected[i].Raw)]++
	}
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	fmt.Println("Shape distribution:")
	for _, shape := range model.AllShapes {
		if c := shapeCounts[shape]; c > 0 {
			fmt.Printf("  %-10s %d\n", shape, c)
		}
	}
}

// randomDate renders a random instant between 1970 and 2050 in one of the
// three parsed shapes.
func randomDate(rng *rand.Rand) string {
	lo := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	hi := time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	t := time.Unix(lo+rng.Int64N(hi-lo), int64(rng.IntN(1000))*int64(time.Millisecond)).UTC()
	switch rng.IntN(3) {
	case 0:
		return t.Format("2006-01-02")
	case 1:
		return t.Format("2006-01-02 15:04:05.000")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
