package document

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Decode reads the single element tree from 'r'. The 'file' is used only
// for the error locations.
func Decode(r io.Reader, file string) (*Element, error) {
	d := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
		text  []byte
	)
	for {
		line, column := d.InputPos()
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			loc := errors.Location{File: file, Line: line, Column: column}
			if syntax, ok := err.(*xml.SyntaxError); ok {
				loc.Line, loc.Column = syntax.Line, 0
			}
			return nil, errors.Wrap(class.DocumentSyntaxInvalid, err, "malformed document").SetLocation(loc)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.New(class.DocumentSyntaxInvalid, "multiple root elements").
					SetLocation(errors.Location{File: file, Line: line, Column: column})
			}
			e := &Element{Name: t.Name.Local, Line: line, Column: column}
			for _, attr := range t.Attr {
				e.SetAttr(attrName(attr.Name), attr.Value)
			}
			if len(stack) == 0 {
				root = e
			} else {
				stack[len(stack)-1].AddChild(e)
			}
			stack = append(stack, e)
			text = text[:0]
		case xml.CharData:
			if len(stack) > 0 {
				text = append(text, t...)
			}
		case xml.EndElement:
			e := stack[len(stack)-1]
			if len(e.Children) == 0 {
				e.Text = string(text)
			}
			text = text[:0]
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errors.New(class.DocumentSyntaxNoRoot, "document has no root element").SetLocation(errors.Location{File: file})
	}
	return root, nil
}

// Unmarshal decodes the element tree from the 'data'.
func Unmarshal(data []byte, file string) (*Element, error) {
	return Decode(bytes.NewReader(data), file)
}

func attrName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
