package content

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://content.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func contentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = errors.Wrap(err, "parse content schema")
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = errors.Wrap(err, "add content schema")
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = errors.Wrap(schemaErr, "compile content schema")
		}
	})
	return compiledSchema, schemaErr
}

// Load reads a YAML content file, checks it against the content schema and
// decodes it into a Catalog.
func Load(path string) (catalog *Catalog, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return catalog, err
	}

	catalog, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "content file %s", path)
		return catalog, err
	}
	return catalog, err
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (catalog *Catalog, err error) {
	var raw any
	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		err = errors.Wrap(err, "failed to parse content YAML")
		return nil, err
	}

	// The schema validator works on JSON values, so round-trip the decoded
	// document through encoding/json.
	var buf []byte
	buf, err = json.Marshal(raw)
	if err != nil {
		err = errors.Wrap(err, "content is not representable as JSON")
		return nil, err
	}
	var doc any
	err = json.Unmarshal(buf, &doc)
	if err != nil {
		err = errors.Wrap(err, "failed to re-read content as JSON")
		return nil, err
	}

	var sch *jsonschema.Schema
	sch, err = contentSchema()
	if err != nil {
		return nil, err
	}
	err = sch.Validate(doc)
	if err != nil {
		err = errors.Wrap(err, "content schema validation failed")
		return nil, err
	}

	catalog = &Catalog{}
	err = yaml.Unmarshal(data, catalog)
	if err != nil {
		err = errors.Wrap(err, "failed to decode content")
		return nil, err
	}

	err = catalog.Validate()
	if err != nil {
		err = errors.Wrap(err, "content validation failed")
		return nil, err
	}
	return catalog, err
}
