package cmds

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// tableDocument is the input format of the table command. It is either a
// mapping with these keys or a bare list of columns. JSON is accepted too.
//
//	header: true
//	columns:
//	  - [Name, apple, avocado]
//	  - [Owner, bob]
type tableDocument struct {
	Columns     [][]any `yaml:"columns"`
	Rows        [][]any `yaml:"rows"`
	Header      *bool   `yaml:"header"`
	RowDividers *bool   `yaml:"row_dividers"`
}

// readTableDocument loads a document from path, or from stdin when path is
// empty or "-"
func readTableDocument(path string, stdin func() (string, error)) (*tableDocument, error) {
	var data []byte
	if path == "" || path == "-" {
		in, err := stdin()
		if err != nil {
			return nil, err
		}
		data = []byte(in)
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read table file: %w", err)
		}
		data = b
	}

	return parseTableDocument(data)
}

func parseTableDocument(data []byte) (*tableDocument, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse table document: %w", err)
	}

	var doc tableDocument
	switch raw.(type) {
	case []any:
		if err := yaml.Unmarshal(data, &doc.Columns); err != nil {
			return nil, fmt.Errorf("parse table columns: %w", err)
		}
	case map[string]any:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse table document: %w", err)
		}
	case nil:
		return nil, errors.New("table document is empty")
	default:
		return nil, fmt.Errorf("table document must be a list or a mapping, got %T", raw)
	}

	if len(doc.Columns) > 0 && len(doc.Rows) > 0 {
		return nil, errors.New("table document sets both columns and rows")
	}

	blankNulls(doc.Columns)
	blankNulls(doc.Rows)

	return &doc, nil
}

// blankNulls renders YAML nulls as empty cells rather than "<nil>"
func blankNulls(cells [][]any) {
	for _, line := range cells {
		for i, v := range line {
			if v == nil {
				line[i] = ""
			}
		}
	}
}
