package tool

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ardnew/denv/env"
)

func decodeHCL(data []byte, filename string) (env.Spec, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return env.Spec{}, ErrDecode.Wrap(diags).With(slog.String("file", filename))
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return env.Spec{}, ErrDecode.Wrap(diags).With(slog.String("file", filename))
	}

	// Attributes are unordered; keep the order they are written in.
	list := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}

	slices.SortFunc(list, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	var spec env.Spec

	for _, attr := range list {
		// Values are literals; there are no variables or functions.
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return env.Spec{}, ErrDecode.Wrap(diags).With(
				slog.String("file", filename),
				slog.String("key", attr.Name),
			)
		}

		value, err := ctyValue(v, true)
		if err != nil {
			return env.Spec{}, ErrDecode.Wrap(err).With(
				slog.String("file", filename),
				slog.String("key", attr.Name),
			)
		}

		spec.Set(attr.Name, value)
	}

	return spec, nil
}

// ctyValue converts an HCL value. Platform objects may not nest.
func ctyValue(v cty.Value, variant bool) (env.Value, error) {
	s, ok, err := ctyScalar(v)
	if err != nil {
		return env.Value{}, err
	}

	if ok {
		return env.Scalar(s), nil
	}

	ty := v.Type()

	switch {
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]string, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			s, ok, err := ctyScalar(elem)
			if err != nil {
				return env.Value{}, fmt.Errorf("list item %d: %w", len(items), err)
			}

			if !ok {
				return env.Value{}, fmt.Errorf(
					"list item %d: unsupported %s", len(items), elem.Type().FriendlyName(),
				)
			}

			items = append(items, s)
		}

		return env.List(items...), nil

	case ty.IsObjectType() || ty.IsMapType():
		if !variant {
			return env.Value{}, fmt.Errorf("nested platform mapping")
		}

		variants := make(map[string]env.Value, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			name := key.AsString()

			sel, err := ctyValue(elem, false)
			if err != nil {
				return env.Value{}, fmt.Errorf("platform %s: %w", name, err)
			}

			variants[strings.ToLower(name)] = sel
		}

		return env.Variant(variants), nil

	default:
		return env.Value{}, fmt.Errorf("unsupported %s", ty.FriendlyName())
	}
}

// ctyScalar formats an HCL scalar as text. Numbers must be integers; see
// [errDecimal].
func ctyScalar(v cty.Value) (string, bool, error) {
	if v.IsNull() {
		return "", true, nil
	}

	if !v.IsKnown() {
		return "", false, nil
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), true, nil
	case cty.Number:
		f := v.AsBigFloat()
		if !f.IsInt() {
			return "", false, fmt.Errorf("%w: %s", errDecimal, f.Text('f', -1))
		}

		return f.Text('f', -1), true, nil
	case cty.Bool:
		return strconv.FormatBool(v.True()), true, nil
	default:
		return "", false, nil
	}
}
