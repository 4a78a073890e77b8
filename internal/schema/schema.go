// Package schema checks pain.001.001.09 documents against a structural
// definition of that one message family and translates the low-level engine
// messages into reviewer-friendly explanations.
//
// The definition is compiled once at startup and shared read-only across
// sessions. It deliberately leaves reference-length limits to the business
// rule layer so that over-long references surface as rule findings instead
// of schema failures.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"sepalint/internal/document"
)

// Namespace is the only message dialect this checker accepts.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"

// Violation is one structural failure. Raw carries the namespace-qualified
// engine message; Translate turns it into a readable explanation.
type Violation struct {
	Tag  string
	Line int
	Raw  string
}

type contentModel int

const (
	modelLeaf contentModel = iota
	modelSequence
	modelChoice
	// modelAny accepts arbitrary content, used for deep party identification
	// and structured remittance blocks this checker does not police.
	modelAny
)

type elemDef struct {
	name     string
	model    contentModel
	children []childDef
	attrs    []attrDef
	typ      *simpleType
}

type childDef struct {
	def *elemDef
	min int
	max int // -1 = unbounded
}

type attrDef struct {
	name     string
	required bool
}

type simpleType struct {
	name string
	ok   func(string) bool
}

// Schema is the compiled structural definition.
type Schema struct {
	root *elemDef
}

// Compile builds and sanity-checks the pain.001.001.09 definition. It fails
// fast on an inconsistent definition so a broken build never validates
// documents.
func Compile() (*Schema, error) {
	root := buildDefinition()
	if err := verify(root, map[*elemDef]bool{}); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{root: root}, nil
}

func verify(def *elemDef, seen map[*elemDef]bool) error {
	if def.name == "" {
		return fmt.Errorf("element definition without a name")
	}
	if seen[def] {
		return nil
	}
	seen[def] = true

	switch def.model {
	case modelLeaf:
		if def.typ == nil {
			return fmt.Errorf("leaf element %q has no simple type", def.name)
		}
	case modelChoice:
		if len(def.children) < 2 {
			return fmt.Errorf("choice element %q needs at least two options", def.name)
		}
	case modelSequence:
		names := map[string]bool{}
		for _, c := range def.children {
			if names[c.def.name] {
				return fmt.Errorf("sequence element %q declares %q twice", def.name, c.def.name)
			}
			names[c.def.name] = true
		}
	}
	for _, c := range def.children {
		if err := verify(c.def, seen); err != nil {
			return err
		}
	}
	return nil
}

// Check validates the parsed tree and returns every structural violation in
// document order. An empty result means the document is schema-valid.
func (s *Schema) Check(root *document.Element) []Violation {
	var out []Violation
	if root.Local != s.root.name || root.Space != Namespace {
		out = append(out, Violation{
			Tag:  root.Local,
			Line: root.Line,
			Raw: fmt.Sprintf("unexpected child element '%s': the root element must be '%s'",
				qualify(root.Local), qualify(s.root.name)),
		})
		return out
	}
	s.checkElement(root, s.root, &out)
	return out
}

func (s *Schema) checkElement(el *document.Element, def *elemDef, out *[]Violation) {
	for _, a := range def.attrs {
		if _, ok := el.Attr(a.name); a.required && !ok {
			*out = append(*out, Violation{
				Tag:  el.Local,
				Line: el.Line,
				Raw: fmt.Sprintf("element '%s' is missing required attribute '%s'",
					qualify(el.Local), a.name),
			})
		}
	}

	switch def.model {
	case modelLeaf:
		if !def.typ.ok(el.Text()) {
			*out = append(*out, Violation{
				Tag:  el.Local,
				Line: el.Line,
				Raw: fmt.Sprintf("element '%s': value '%s' is not a valid %s",
					qualify(el.Local), el.Text(), def.typ.name),
			})
		}
	case modelSequence:
		s.checkSequence(el, def, out)
	case modelChoice:
		s.checkChoice(el, def, out)
	case modelAny:
		// Content intentionally unchecked.
	}
}

func (s *Schema) checkSequence(el *document.Element, def *elemDef, out *[]Violation) {
	byName := make(map[string]childDef, len(def.children))
	position := make(map[string]int, len(def.children))
	for i, c := range def.children {
		byName[c.def.name] = c
		position[c.def.name] = i
	}

	counts := map[string]int{}
	lastPos := -1
	ordered := true
	for _, child := range el.Children {
		c, known := byName[child.Local]
		if !known || child.Space != Namespace {
			*out = append(*out, Violation{
				Tag:  child.Local,
				Line: child.Line,
				Raw: fmt.Sprintf("unexpected child element '%s' in element '%s'",
					qualify(child.Local), qualify(el.Local)),
			})
			continue
		}
		if position[child.Local] < lastPos {
			ordered = false
		}
		lastPos = position[child.Local]
		counts[child.Local]++
		if c.max != -1 && counts[child.Local] > c.max {
			ordered = false
		}
		s.checkElement(child, c.def, out)
	}

	complete := true
	for _, c := range def.children {
		if counts[c.def.name] < c.min {
			complete = false
		}
	}
	if !complete || !ordered {
		*out = append(*out, Violation{
			Tag:  el.Local,
			Line: el.Line,
			Raw: fmt.Sprintf("element '%s' does not match sequence model: a required field is missing, repeated, or out of order",
				qualify(el.Local)),
		})
	}
}

func (s *Schema) checkChoice(el *document.Element, def *elemDef, out *[]Violation) {
	var matched []*document.Element
	var matchedDefs []*elemDef
	for _, child := range el.Children {
		for _, c := range def.children {
			if child.Local == c.def.name && child.Space == Namespace {
				matched = append(matched, child)
				matchedDefs = append(matchedDefs, c.def)
			}
		}
	}
	if len(matched) != 1 || len(el.Children) != 1 {
		*out = append(*out, Violation{
			Tag:  el.Local,
			Line: el.Line,
			Raw: fmt.Sprintf("content of element '%s' does not match choice model",
				qualify(el.Local)),
		})
	}
	for i, child := range matched {
		s.checkElement(child, matchedDefs[i], out)
	}
}

func qualify(local string) string {
	return "{" + Namespace + "}" + local
}

// -----------------------------------------------------------------------------
// Structural definition
// -----------------------------------------------------------------------------

func leaf(name string, typ *simpleType) *elemDef {
	return &elemDef{name: name, model: modelLeaf, typ: typ}
}

func seq(name string, children ...childDef) *elemDef {
	return &elemDef{name: name, model: modelSequence, children: children}
}

func choice(name string, options ...*elemDef) *elemDef {
	children := make([]childDef, len(options))
	for i, o := range options {
		children[i] = childDef{def: o, min: 0, max: 1}
	}
	return &elemDef{name: name, model: modelChoice, children: children}
}

func anyContent(name string) *elemDef {
	return &elemDef{name: name, model: modelAny}
}

func req(def *elemDef) childDef         { return childDef{def: def, min: 1, max: 1} }
func opt(def *elemDef) childDef         { return childDef{def: def, min: 0, max: 1} }
func repeated(def *elemDef) childDef    { return childDef{def: def, min: 1, max: -1} }
func optRepeated(def *elemDef) childDef { return childDef{def: def, min: 0, max: -1} }

var (
	typeText = &simpleType{name: "Max35Text", ok: func(v string) bool {
		return v != ""
	}}
	typeLongText = &simpleType{name: "Max140Text", ok: func(v string) bool {
		return v != "" && len(v) <= 140
	}}
	typeDate = &simpleType{name: "ISODate", ok: func(v string) bool {
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	}}
	typeDateTime = &simpleType{name: "ISODateTime", ok: func(v string) bool {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if _, err := time.Parse(layout, v); err == nil {
				return true
			}
		}
		return false
	}}
	typeDecimal = &simpleType{name: "DecimalNumber", ok: func(v string) bool {
		if v == "" {
			return false
		}
		_, err := strconv.ParseFloat(v, 64)
		return err == nil && !strings.ContainsAny(v, "eE+")
	}}
	typeNumeric = &simpleType{name: "Max15NumericText", ok: func(v string) bool {
		if v == "" || len(v) > 15 {
			return false
		}
		for _, r := range v {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}}
	typePaymentMethod = &simpleType{name: "PaymentMethod3Code", ok: func(v string) bool {
		return v == "TRF" || v == "CHK" || v == "TRA"
	}}
	typeChargeBearer = &simpleType{name: "ChargeBearerType1Code", ok: func(v string) bool {
		switch v {
		case "DEBT", "CRED", "SHAR", "SLEV":
			return true
		}
		return false
	}}
	typeUETR = &simpleType{name: "UUIDv4Identifier", ok: func(v string) bool {
		id, err := uuid.Parse(v)
		return err == nil && id.Version() == 4
	}}
	typeCountry = &simpleType{name: "CountryCode", ok: func(v string) bool {
		return len(v) == 2 && v == strings.ToUpper(v) && strings.IndexFunc(v, func(r rune) bool {
			return r < 'A' || r > 'Z'
		}) == -1
	}}
)

// buildDefinition wires the pain.001.001.09 subset this service polices.
// Party identification and structured remittance blocks are accepted without
// deep inspection; everything the rule layer reads is structurally pinned.
func buildDefinition() *elemDef {
	postalAddress := seq("PstlAdr",
		opt(leaf("StrtNm", typeText)),
		opt(leaf("BldgNb", typeText)),
		opt(leaf("PstCd", typeText)),
		opt(leaf("TwnNm", typeText)),
		opt(leaf("Ctry", typeCountry)),
		optRepeated(leaf("AdrLine", typeLongText)),
	)
	party := func(name string) *elemDef {
		return seq(name,
			opt(leaf("Nm", typeLongText)),
			opt(postalAddress),
			opt(anyContent("Id")),
		)
	}
	account := func(name string) *elemDef {
		return seq(name,
			req(choice("Id",
				leaf("IBAN", typeText),
				anyContent("Othr"),
			)),
			opt(leaf("Ccy", typeText)),
		)
	}
	agent := func(name string) *elemDef {
		return seq(name,
			req(seq("FinInstnId",
				opt(leaf("BICFI", typeText)),
				opt(anyContent("Othr")),
			)),
		)
	}

	svcLvl := choice("SvcLvl",
		leaf("Cd", typeText),
		leaf("Prtry", typeText),
	)
	pmtTpInf := seq("PmtTpInf",
		opt(leaf("InstrPrty", typeText)),
		opt(svcLvl),
		opt(choice("LclInstrm", leaf("Cd", typeText), leaf("Prtry", typeText))),
		opt(choice("CtgyPurp", leaf("Cd", typeText), leaf("Prtry", typeText))),
	)

	instdAmt := &elemDef{
		name:  "InstdAmt",
		model: modelLeaf,
		typ:   typeDecimal,
		attrs: []attrDef{{name: "Ccy", required: true}},
	}
	eqvtAmt := seq("EqvtAmt",
		req(&elemDef{
			name:  "Amt",
			model: modelLeaf,
			typ:   typeDecimal,
			attrs: []attrDef{{name: "Ccy", required: true}},
		}),
		req(leaf("CcyOfTrf", typeText)),
	)

	tx := seq("CdtTrfTxInf",
		req(seq("PmtId",
			opt(leaf("InstrId", typeText)),
			req(leaf("EndToEndId", typeText)),
			opt(leaf("UETR", typeUETR)),
		)),
		opt(pmtTpInf),
		req(choice("Amt", instdAmt, eqvtAmt)),
		opt(leaf("ChrgBr", typeChargeBearer)),
		opt(agent("CdtrAgt")),
		req(party("Cdtr")),
		req(account("CdtrAcct")),
		opt(choice("Purp", leaf("Cd", typeText), leaf("Prtry", typeText))),
		opt(seq("RmtInf",
			optRepeated(leaf("Ustrd", typeLongText)),
			optRepeated(anyContent("Strd")),
		)),
	)

	pmtInf := seq("PmtInf",
		req(leaf("PmtInfId", typeText)),
		req(leaf("PmtMtd", typePaymentMethod)),
		opt(leaf("BtchBookg", typeText)),
		opt(leaf("NbOfTxs", typeNumeric)),
		opt(leaf("CtrlSum", typeDecimal)),
		opt(pmtTpInf),
		req(choice("ReqdExctnDt",
			leaf("Dt", typeDate),
			leaf("DtTm", typeDateTime),
		)),
		req(party("Dbtr")),
		req(account("DbtrAcct")),
		req(agent("DbtrAgt")),
		opt(leaf("ChrgBr", typeChargeBearer)),
		repeated(tx),
	)

	grpHdr := seq("GrpHdr",
		req(leaf("MsgId", typeText)),
		req(leaf("CreDtTm", typeDateTime)),
		req(leaf("NbOfTxs", typeNumeric)),
		opt(leaf("CtrlSum", typeDecimal)),
		req(party("InitgPty")),
	)

	return seq("Document",
		req(seq("CstmrCdtTrfInitn",
			req(grpHdr),
			repeated(pmtInf),
		)),
	)
}
