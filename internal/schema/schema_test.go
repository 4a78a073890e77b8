package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepalint/internal/document"
	"sepalint/pkg/testutil"
)

func compileSchema(t *testing.T) *Schema {
	t.Helper()
	sch, err := Compile()
	require.NoError(t, err)
	return sch
}

func parse(t *testing.T, doc string) *document.Element {
	t.Helper()
	root, err := document.Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func TestCompile(t *testing.T) {
	sch, err := Compile()
	require.NoError(t, err)
	assert.NotNil(t, sch)
}

func TestCheckAcceptsValidDocument(t *testing.T) {
	sch := compileSchema(t)
	root := parse(t, testutil.ValidPayment().Render())

	violations := sch.Check(root)
	assert.Empty(t, violations)
}

func TestCheckRejectsWrongRoot(t *testing.T) {
	sch := compileSchema(t)
	root := parse(t, `<Payment xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"><X>1</X></Payment>`)

	violations := sch.Check(root)
	require.Len(t, violations, 1)
	assert.Equal(t, "Payment", violations[0].Tag)
	assert.Contains(t, violations[0].Raw, "unexpected child element")
}

func TestCheckRejectsWrongNamespace(t *testing.T) {
	sch := compileSchema(t)
	doc := strings.Replace(testutil.ValidPayment().Render(),
		"pain.001.001.09", "pain.001.001.03", 1)
	root := parse(t, doc)

	violations := sch.Check(root)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0].Raw, "the root element must be")
}

func TestCheckReportsMissingRequiredField(t *testing.T) {
	sch := compileSchema(t)
	doc := testutil.ValidPayment().Render()
	doc = strings.Replace(doc, "      <MsgId>MSG-2026-0001</MsgId>\n", "", 1)
	root := parse(t, doc)

	violations := sch.Check(root)
	require.Len(t, violations, 1)
	assert.Equal(t, "GrpHdr", violations[0].Tag)
	assert.Contains(t, violations[0].Raw, "sequence model")
	assert.Equal(t, 4, violations[0].Line)
}

func TestCheckReportsUnexpectedChild(t *testing.T) {
	sch := compileSchema(t)
	doc := strings.Replace(testutil.ValidPayment().Render(),
		"      <NbOfTxs>1</NbOfTxs>\n",
		"      <NbOfTxs>1</NbOfTxs>\n      <Bogus>x</Bogus>\n", 1)
	root := parse(t, doc)

	violations := sch.Check(root)
	require.Len(t, violations, 1)
	assert.Equal(t, "Bogus", violations[0].Tag)
	assert.Contains(t, violations[0].Raw, "unexpected child element")
}

func TestCheckReportsMissingCurrencyAttribute(t *testing.T) {
	sch := compileSchema(t)
	doc := strings.Replace(testutil.ValidPayment().Render(),
		`<InstdAmt Ccy="EUR">`, "<InstdAmt>", 1)
	root := parse(t, doc)

	violations := sch.Check(root)
	require.Len(t, violations, 1)
	assert.Equal(t, "InstdAmt", violations[0].Tag)
	assert.Contains(t, violations[0].Raw, "missing required attribute")
}

func TestCheckReportsChoiceViolation(t *testing.T) {
	sch := compileSchema(t)
	doc := strings.Replace(testutil.ValidPayment().Render(),
		`<Amt><InstdAmt Ccy="EUR">1250.00</InstdAmt></Amt>`,
		`<Amt><InstdAmt Ccy="EUR">1250.00</InstdAmt><InstdAmt Ccy="EUR">2.00</InstdAmt></Amt>`, 1)
	root := parse(t, doc)

	violations := sch.Check(root)
	require.NotEmpty(t, violations)
	assert.Equal(t, "Amt", violations[0].Tag)
	assert.Contains(t, violations[0].Raw, "choice model")
}

func TestCheckSimpleTypes(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		tag     string
		typName string
	}{
		{
			name:    "bad execution date",
			old:     "<Dt>2026-01-16</Dt>",
			new:     "<Dt>not-a-date</Dt>",
			tag:     "Dt",
			typName: "ISODate",
		},
		{
			name:    "bad creation timestamp",
			old:     "<CreDtTm>2026-01-15T09:30:00</CreDtTm>",
			new:     "<CreDtTm>yesterday</CreDtTm>",
			tag:     "CreDtTm",
			typName: "ISODateTime",
		},
		{
			name:    "bad transaction count",
			old:     "<NbOfTxs>1</NbOfTxs>",
			new:     "<NbOfTxs>one</NbOfTxs>",
			tag:     "NbOfTxs",
			typName: "Max15NumericText",
		},
		{
			name:    "bad payment method",
			old:     "<PmtMtd>TRF</PmtMtd>",
			new:     "<PmtMtd>WIR</PmtMtd>",
			tag:     "PmtMtd",
			typName: "PaymentMethod3Code",
		},
		{
			name:    "amount with exponent",
			old:     `<InstdAmt Ccy="EUR">1250.00</InstdAmt>`,
			new:     `<InstdAmt Ccy="EUR">1.25e3</InstdAmt>`,
			tag:     "InstdAmt",
			typName: "DecimalNumber",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch := compileSchema(t)
			doc := strings.Replace(testutil.ValidPayment().Render(), tt.old, tt.new, 1)
			root := parse(t, doc)

			violations := sch.Check(root)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.tag, violations[0].Tag)
			assert.Contains(t, violations[0].Raw, "is not a valid "+tt.typName)
		})
	}
}

func TestCheckUETR(t *testing.T) {
	fixture := testutil.ValidPayment()
	fixture.Batches[0].Txs[0].UETR = "not-a-uuid"
	root := parse(t, fixture.Render())

	violations := compileSchema(t).Check(root)
	require.Len(t, violations, 1)
	assert.Equal(t, "UETR", violations[0].Tag)

	fixture.Batches[0].Txs[0].UETR = "9b2b64a3-6b33-4a6c-8a5a-0f2da86b4a10"
	root = parse(t, fixture.Render())
	assert.Empty(t, compileSchema(t).Check(root))
}

func TestCheckAcceptsOverlongReferences(t *testing.T) {
	// Reference length is a business rule, not a structural failure.
	fixture := testutil.ValidPayment()
	fixture.MsgID = strings.Repeat("X", 70)
	root := parse(t, fixture.Render())

	assert.Empty(t, compileSchema(t).Check(root))
}
