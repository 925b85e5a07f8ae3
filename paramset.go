// Copyright 2026 The phc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phc

import "fmt"

// The ExtractN / SerializeParamsN functions below map an ordered set of
// declared parameters onto the untyped parameter list of a RawPHC. Go has
// no heterogeneously typed variadic functions, so the set is spelled out
// per arity; one function per tuple size from 1 to 8.
//
// Matching is positional and never backtracks: a cursor walks the raw list
// front to back, each declared parameter either consumes the pair at the
// cursor (if the name matches) or falls back to its default. A complete
// but reordered parameter list therefore fails extraction; schemes are
// expected to emit their parameters in one canonical order. Raw pairs left
// over after the last declared parameter are ignored.
//
// Extraction is all or nothing: the first parameter that is missing
// without a default, or whose value doesn't parse, fails the whole set
// with an ExtractError. A partial result is never returned.

// paramCursor walks the raw parameter pairs front to back, consuming them
// as declared parameters match.
type paramCursor []ParamPair

// nextIfName consumes and returns the value at the cursor if its name is
// name; otherwise the cursor is left unmoved.
func (c *paramCursor) nextIfName(name string) (string, bool) {
	if len(*c) == 0 || (*c)[0].Name != name {
		return "", false
	}
	value := (*c)[0].Value
	*c = (*c)[1:]
	return value, true
}

// extractSingle resolves one declared parameter against the cursor: the
// matching pair's value if the cursor points at one, the default
// otherwise.
func extractSingle[T any](c *paramCursor, p Param[T]) (T, error) {
	raw, ok := c.nextIfName(p.Name())
	if !ok {
		def, ok := p.Default()
		if !ok {
			var zero T
			return zero, NewExtractError(p.Name(), "required parameter is missing")
		}
		return def, nil
	}
	value, ok := p.Extract(raw)
	if !ok {
		var zero T
		return zero, NewExtractError(p.Name(), fmt.Sprintf("can't parse value %q", raw))
	}
	return value, nil
}

// appendParam appends the serialized form of one parameter, skipping it
// entirely if the value equals the parameter's default.
func appendParam[T any](params []ParamPair, p Param[T], value T) []ParamPair {
	if text, ok := p.Serialize(value); ok {
		return append(params, ParamPair{Name: p.Name(), Value: text})
	}
	return params
}

// Extract1 extracts a single declared parameter from the raw value.
func Extract1[A any](phc *RawPHC, pa Param[A]) (a A, err error) {
	c := paramCursor(phc.Params())
	a, err = extractSingle(&c, pa)
	return
}

// Extract2 extracts two declared parameters, in order, from the raw value.
func Extract2[A, B any](phc *RawPHC, pa Param[A], pb Param[B]) (a A, b B, err error) {
	c := paramCursor(phc.Params())
	if a, err = extractSingle(&c, pa); err != nil {
		return
	}
	b, err = extractSingle(&c, pb)
	return
}

// Extract3 extracts three declared parameters, in order, from the raw
// value.
func Extract3[A, B, C any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C]) (a A, b B, c C, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	c, err = extractSingle(&cur, pc)
	return
}

// Extract4 extracts four declared parameters, in order, from the raw
// value.
func Extract4[A, B, C, D any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C], pd Param[D]) (a A, b B, c C, d D, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	if c, err = extractSingle(&cur, pc); err != nil {
		return
	}
	d, err = extractSingle(&cur, pd)
	return
}

// Extract5 extracts five declared parameters, in order, from the raw
// value.
func Extract5[A, B, C, D, E any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C], pd Param[D], pe Param[E]) (a A, b B, c C, d D, e E, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	if c, err = extractSingle(&cur, pc); err != nil {
		return
	}
	if d, err = extractSingle(&cur, pd); err != nil {
		return
	}
	e, err = extractSingle(&cur, pe)
	return
}

// Extract6 extracts six declared parameters, in order, from the raw value.
func Extract6[A, B, C, D, E, F any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C], pd Param[D], pe Param[E], pf Param[F]) (a A, b B, c C, d D, e E, f F, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	if c, err = extractSingle(&cur, pc); err != nil {
		return
	}
	if d, err = extractSingle(&cur, pd); err != nil {
		return
	}
	if e, err = extractSingle(&cur, pe); err != nil {
		return
	}
	f, err = extractSingle(&cur, pf)
	return
}

// Extract7 extracts seven declared parameters, in order, from the raw
// value.
func Extract7[A, B, C, D, E, F, G any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C], pd Param[D], pe Param[E], pf Param[F], pg Param[G]) (a A, b B, c C, d D, e E, f F, g G, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	if c, err = extractSingle(&cur, pc); err != nil {
		return
	}
	if d, err = extractSingle(&cur, pd); err != nil {
		return
	}
	if e, err = extractSingle(&cur, pe); err != nil {
		return
	}
	if f, err = extractSingle(&cur, pf); err != nil {
		return
	}
	g, err = extractSingle(&cur, pg)
	return
}

// Extract8 extracts eight declared parameters, in order, from the raw
// value.
func Extract8[A, B, C, D, E, F, G, H any](phc *RawPHC, pa Param[A], pb Param[B], pc Param[C], pd Param[D], pe Param[E], pf Param[F], pg Param[G], ph Param[H]) (a A, b B, c C, d D, e E, f F, g G, h H, err error) {
	cur := paramCursor(phc.Params())
	if a, err = extractSingle(&cur, pa); err != nil {
		return
	}
	if b, err = extractSingle(&cur, pb); err != nil {
		return
	}
	if c, err = extractSingle(&cur, pc); err != nil {
		return
	}
	if d, err = extractSingle(&cur, pd); err != nil {
		return
	}
	if e, err = extractSingle(&cur, pe); err != nil {
		return
	}
	if f, err = extractSingle(&cur, pf); err != nil {
		return
	}
	if g, err = extractSingle(&cur, pg); err != nil {
		return
	}
	h, err = extractSingle(&cur, ph)
	return
}

// SerializeParams1 renders one declared parameter into a parameter list
// usable with FromParts. The result is empty if the value is elided.
func SerializeParams1[A any](pa Param[A], a A) []ParamPair {
	params := make([]ParamPair, 0, 1)
	params = appendParam(params, pa, a)
	return params
}

// SerializeParams2 renders two declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams2[A, B any](pa Param[A], a A, pb Param[B], b B) []ParamPair {
	params := make([]ParamPair, 0, 2)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	return params
}

// SerializeParams3 renders three declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams3[A, B, C any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C) []ParamPair {
	params := make([]ParamPair, 0, 3)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	return params
}

// SerializeParams4 renders four declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams4[A, B, C, D any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C, pd Param[D], d D) []ParamPair {
	params := make([]ParamPair, 0, 4)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	params = appendParam(params, pd, d)
	return params
}

// SerializeParams5 renders five declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams5[A, B, C, D, E any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C, pd Param[D], d D, pe Param[E], e E) []ParamPair {
	params := make([]ParamPair, 0, 5)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	params = appendParam(params, pd, d)
	params = appendParam(params, pe, e)
	return params
}

// SerializeParams6 renders six declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams6[A, B, C, D, E, F any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C, pd Param[D], d D, pe Param[E], e E, pf Param[F], f F) []ParamPair {
	params := make([]ParamPair, 0, 6)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	params = appendParam(params, pd, d)
	params = appendParam(params, pe, e)
	params = appendParam(params, pf, f)
	return params
}

// SerializeParams7 renders seven declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams7[A, B, C, D, E, F, G any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C, pd Param[D], d D, pe Param[E], e E, pf Param[F], f F, pg Param[G], g G) []ParamPair {
	params := make([]ParamPair, 0, 7)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	params = appendParam(params, pd, d)
	params = appendParam(params, pe, e)
	params = appendParam(params, pf, f)
	params = appendParam(params, pg, g)
	return params
}

// SerializeParams8 renders eight declared parameters, in order, eliding
// values equal to their defaults.
func SerializeParams8[A, B, C, D, E, F, G, H any](pa Param[A], a A, pb Param[B], b B, pc Param[C], c C, pd Param[D], d D, pe Param[E], e E, pf Param[F], f F, pg Param[G], g G, ph Param[H], h H) []ParamPair {
	params := make([]ParamPair, 0, 8)
	params = appendParam(params, pa, a)
	params = appendParam(params, pb, b)
	params = appendParam(params, pc, c)
	params = appendParam(params, pd, d)
	params = appendParam(params, pe, e)
	params = appendParam(params, pf, f)
	params = appendParam(params, pg, g)
	params = appendParam(params, ph, h)
	return params
}
