package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// bodyParams reads a form, multipart or JSON body into url.Values.
// JSON scalars are converted to their string form; objects and arrays are ignored.
func bodyParams(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return jsonParams(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, errInvalidBody
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, errInvalidBody
		}
	}
	return r.PostForm, nil
}

func jsonParams(r *http.Request) (url.Values, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errInvalidBody
	}

	values := url.Values{}
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			values.Set(k, v)
		case json.Number:
			values.Set(k, v.String())
		case bool:
			values.Set(k, strconv.FormatBool(v))
		}
	}
	return values, nil
}
