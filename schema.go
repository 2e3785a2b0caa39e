package groupby

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/request.json
var requestSchema string

// ValidateRequestJSON checks that a request document has the expected shape.
// Record contents and the aggregatedFields form are left to Aggregate.
func ValidateRequestJSON(requestJSON []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(requestSchema)
	documentLoader := gojsonschema.NewBytesLoader(requestJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: error validating request: %v", ErrInvalidRequest, err)
	}

	if !result.Valid() {
		var errorMessages strings.Builder
		for _, desc := range result.Errors() {
			fmt.Fprintf(&errorMessages, "- %s\n", desc)
		}
		return fmt.Errorf("%w: request JSON is not valid:\n%s", ErrInvalidRequest, errorMessages.String())
	}

	return nil
}
