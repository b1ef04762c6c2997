package template

import (
	"reflect"

	"github.com/neuronlabs/xgraph/contract"
	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// Template attributes.
const (
	AttrBase      = "base"
	AttrTemplated = "templated"
)

var templateType = reflect.TypeOf(&Template{})

// Contract is the serialization contract for the templates. The template is written with its
// base and templated types and the snapshot as the only child element.
//
//	<shape base="geometry.Shape" templated="*geometry.Circle">
//		<circle type="*geometry.Circle" id="1">...</circle>
//	</shape>
type Contract struct{ contract.Base }

// Name implements contract.Contract interface.
func (Contract) Name() string {
	return "Template"
}

// CanManageType implements contract.Contract interface.
func (Contract) CanManageType(t reflect.Type, _ *contract.Session) contract.Support {
	if t == templateType {
		return contract.Supports(contract.LevelType, contract.SubExact, contract.Match{Type: t})
	}
	return contract.NotSupported
}

// Create implements contract.Contract interface.
func (Contract) Create(m contract.Match, e *document.Element, s *contract.Session) (reflect.Value, error) {
	baseName, ok := e.Attr(AttrBase)
	if !ok {
		return reflect.Value{}, errors.Newf(class.SerializationMissingAttribute, "template element: '%s' has no base type", e.Name)
	}
	base, err := s.Types().Resolve(baseName)
	if err != nil {
		return reflect.Value{}, errors.Wrapf(class.SerializationUnresolvedType, err, "template base type: '%s' could not be resolved", baseName)
	}
	t := New(s.Engine(), base)

	templatedName, ok := e.Attr(AttrTemplated)
	if !ok || len(e.Children) == 0 {
		return reflect.ValueOf(t), nil
	}
	if t.templatedType, err = s.Types().Resolve(templatedName); err != nil {
		return reflect.Value{}, errors.Wrapf(class.SerializationUnresolvedType, err, "templated type: '%s' could not be resolved", templatedName)
	}
	t.snapshot = e.Children[0].Clone()
	return reflect.ValueOf(t), nil
}

// Read implements contract.Contract interface.
func (Contract) Read(_ contract.Match, v reflect.Value, _ *document.Element, _ *contract.Session) (reflect.Value, error) {
	return v, nil
}

// Write implements contract.Contract interface.
func (Contract) Write(m contract.Match, v reflect.Value, e *document.Element, s *contract.Session) error {
	t := v.Interface().(*Template)
	e.SetAttr(AttrBase, s.TypeName(t.BaseType()))
	if m.Declared != v.Type() {
		e.SetAttr(document.AttrType, s.TypeName(v.Type()))
	}
	snapshot := t.Snapshot()
	if snapshot == nil {
		return nil
	}
	e.SetAttr(AttrTemplated, s.TypeName(t.TemplatedType()))
	e.AddChild(snapshot)
	return nil
}
