package document

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Encoder writes the element trees in the canonical text form.
type Encoder struct {
	w       *bufio.Writer
	indent  string
	started bool
}

// NewEncoder creates new encoder writing to 'w'. The 'indent' is the number of spaces
// used for each nesting level, zero writes the whole document in a single line.
func NewEncoder(w io.Writer, indent int) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), indent: strings.Repeat(" ", indent)}
}

// Encode writes the element tree 'e'.
func (enc *Encoder) Encode(e *Element) error {
	if e == nil {
		return errors.New(class.DocumentEncodeName, "nil root element")
	}
	enc.started = false
	if err := enc.element(e, 0); err != nil {
		return err
	}
	if enc.indent != "" {
		enc.w.WriteByte('\n')
	}
	if err := enc.w.Flush(); err != nil {
		return errors.Wrap(class.DocumentEncodeOutput, err, "writing document failed")
	}
	return nil
}

func (enc *Encoder) element(e *Element, depth int) error {
	if !isName(e.Name) {
		return errors.Newf(class.DocumentEncodeName, "invalid element name: '%s'", e.Name)
	}
	enc.newLine(depth)
	enc.w.WriteByte('<')
	enc.w.WriteString(e.Name)
	for _, name := range e.AttrNames() {
		if !isName(name) {
			return errors.Newf(class.DocumentEncodeName, "invalid attribute name: '%s' in element: '%s'", name, e.Name)
		}
		enc.w.WriteByte(' ')
		enc.w.WriteString(name)
		enc.w.WriteString(`="`)
		if err := xml.EscapeText(enc.w, []byte(e.Attrs[name])); err != nil {
			return errors.Wrap(class.DocumentEncodeOutput, err, "escaping attribute failed")
		}
		enc.w.WriteByte('"')
	}

	switch {
	case len(e.Children) > 0:
		enc.w.WriteByte('>')
		for _, child := range e.Children {
			if err := enc.element(child, depth+1); err != nil {
				return err
			}
		}
		enc.newLine(depth)
	case e.Text != "":
		enc.w.WriteByte('>')
		if err := xml.EscapeText(enc.w, []byte(e.Text)); err != nil {
			return errors.Wrap(class.DocumentEncodeOutput, err, "escaping text failed")
		}
	default:
		enc.w.WriteString("/>")
		return nil
	}
	enc.w.WriteString("</")
	enc.w.WriteString(e.Name)
	enc.w.WriteByte('>')
	return nil
}

func (enc *Encoder) newLine(depth int) {
	if enc.indent == "" {
		return
	}
	if enc.started {
		enc.w.WriteByte('\n')
	}
	enc.started = true
	for i := 0; i < depth; i++ {
		enc.w.WriteString(enc.indent)
	}
}

// Marshal encodes the element tree into bytes.
func Marshal(e *Element, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, indent).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isName checks if 's' is a valid element or attribute name.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7f:
		case i > 0 && (r == '-' || r == '.' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
