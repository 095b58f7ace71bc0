package v1

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"go-recruitment-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// readInput decodes the request body into a field map for the usecases. JSON
// bodies and form posts are accepted; an empty body yields an empty map so
// that validation reports the missing fields.
func readInput(c *gin.Context) (map[string]any, error) {
	input := map[string]any{}

	if c.ContentType() == gin.MIMEPOSTForm || c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil, apperror.BadRequest("Malformed form body")
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				input[key] = values[0]
			}
		}
		return input, nil
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, apperror.BadRequest("Malformed JSON body")
	}
	return input, nil
}

// pathID parses a positive integer path parameter. Anything else cannot name
// a record, so it is reported as not found.
func pathID(c *gin.Context, name, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NotFound(notFound)
	}
	return id, nil
}
