package fieldgate_test

import (
	"fmt"

	fieldgate "github.com/fieldgate/sdk"
	"github.com/fieldgate/sdk/parser"
	"github.com/fieldgate/sdk/schema"
)

// ExampleProcess reconciles raw model output against a schema: the JSON
// payload is pulled out of the response text, messy values are coerced,
// and the result is validated and graded.
func ExampleProcess() {
	s, err := schema.ParseBytes([]byte(`
fields:
  company:
    type: string
    description: Legal name of the company
  amount:
    type: number
    description: Round size in USD
    min: 0
  stage:
    type: string
    enum: [seed, series_a, series_b]
    optional: true
`))
	if err != nil {
		panic(err)
	}

	raw := "Sure, here is the extraction:\n" +
		"```json\n" +
		`{"company": "Acme Corp", "amount": "1500000", "stage": "Series A"}` + "\n" +
		"```"

	data, err := parser.Decode(raw)
	if err != nil {
		panic(err)
	}

	coerced, rep := fieldgate.Process(s, data, 90)

	fmt.Println("accepted:", rep.Accepted)
	fmt.Println("quality:", rep.Quality)
	fmt.Println("amount:", coerced["amount"])
	fmt.Println("stage:", coerced["stage"])
	// Output:
	// accepted: true
	// quality: partial
	// amount: 1.5e+06
	// stage: series_a
}

// ExampleSchema shows building a schema in code instead of parsing a
// document.
func ExampleSchema() {
	s := schema.New(
		schema.String("ticker", "Stock ticker symbol"),
		schema.Number("price", "Last trade price").WithMin(0),
		schema.Boolean("halted", "").AsOptional(),
	)

	_, rep := fieldgate.Process(s, map[string]any{
		"ticker": "ACME",
		"price":  10.25,
	}, 100)

	fmt.Println("valid:", rep.Valid)
	// Output:
	// valid: true
}
