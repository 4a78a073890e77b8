package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	"sepalint/pkg/testutil"
)

// applyRule runs a single rule against a rendered document and returns the
// session holding its findings and checklist outcome.
func applyRule(t *testing.T, doc string, rule Rule) *validation.Session {
	t.Helper()
	root, err := document.Parse([]byte(doc))
	require.NoError(t, err)
	sess := validation.NewSession(Decls([]Rule{rule}))
	rule.Apply(root, sess)
	return sess
}

func checkOutcome(t *testing.T, sess *validation.Session, id string, want bool) {
	t.Helper()
	status, ok := sess.Check(id)
	require.True(t, ok)
	require.NotNil(t, status.Status)
	assert.Equal(t, want, *status.Status)
}

func TestGenericSetOrder(t *testing.T) {
	var ids []string
	for _, r := range GenericSet() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{
		"sepa_currency", "iban_format", "bic_format", "amount_positive",
		"sepa_charset", "reference_length", "service_level", "amount_limits",
	}, ids)
}

func TestCurrencyRule(t *testing.T) {
	t.Run("EUR passes", func(t *testing.T) {
		sess := applyRule(t, testutil.ValidPayment().Render(), CurrencyRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "sepa_currency", true)
	})

	t.Run("foreign currency fails", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Currency = "USD"
		sess := applyRule(t, fixture.Render(), CurrencyRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Equal(t, validation.SeverityError, findings[0].Severity)
		assert.Equal(t, "InstdAmt", findings[0].Tag)
		assert.Equal(t, "SEPA allows EUR only, found: USD", findings[0].Message)
		checkOutcome(t, sess, "sepa_currency", false)
	})

	t.Run("missing attribute is not a currency violation", func(t *testing.T) {
		doc := strings.Replace(testutil.ValidPayment().Render(),
			`<InstdAmt Ccy="EUR">`, "<InstdAmt>", 1)
		sess := applyRule(t, doc, CurrencyRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "sepa_currency", true)
	})
}

func TestIBANRuleFlagsEveryBadIBAN(t *testing.T) {
	fixture := testutil.ValidPayment()
	fixture.Batches[0].DebtorIBAN = "DE123"
	fixture.Batches[0].Txs[0].CreditorIBAN = "XX"
	sess := applyRule(t, fixture.Render(), IBANRule{})

	findings := sess.Findings()
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, validation.SeverityError, f.Severity)
		assert.Equal(t, "IBAN", f.Tag)
	}
	checkOutcome(t, sess, "iban_format", false)
}

func TestBICRuleWarns(t *testing.T) {
	fixture := testutil.ValidPayment()
	fixture.Batches[0].Txs[0].CreditorBIC = "SHORT"
	sess := applyRule(t, fixture.Render(), BICRule{})

	findings := sess.Findings()
	require.Len(t, findings, 1)
	assert.Equal(t, validation.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "BICFI", findings[0].Tag)
	checkOutcome(t, sess, "bic_format", false)
}

func TestAmountRule(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		message string
	}{
		{name: "zero", amount: "0.00", message: "amount must be greater than zero, found: 0"},
		{name: "negative", amount: "-5.00", message: "amount must be greater than zero, found: -5"},
		{name: "not a number", amount: "abc", message: "amount is not a number: abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := testutil.ValidPayment()
			fixture.Batches[0].Txs[0].Amount = tt.amount
			sess := applyRule(t, fixture.Render(), AmountRule{})

			findings := sess.Findings()
			require.Len(t, findings, 1)
			assert.Equal(t, validation.SeverityError, findings[0].Severity)
			assert.Equal(t, tt.message, findings[0].Message)
			checkOutcome(t, sess, "amount_positive", false)
		})
	}

	t.Run("smallest positive amount passes", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Amount = "0.01"
		sess := applyRule(t, fixture.Render(), AmountRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "amount_positive", true)
	})
}

func TestCharsetRule(t *testing.T) {
	t.Run("umlauts are flagged once each", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Remittance = "Zahlung für Müller"
		sess := applyRule(t, fixture.Render(), CharsetRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Equal(t, validation.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "Ustrd", findings[0].Tag)
		assert.Equal(t, "invalid characters: ü in 'Zahlung für Müller'", findings[0].Message)
		checkOutcome(t, sess, "sepa_charset", false)
	})

	t.Run("long values are previewed", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Remittance = "Überweisung " + strings.Repeat("x", 40)
		sess := applyRule(t, fixture.Render(), CharsetRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "...")
	})

	t.Run("allowed punctuation passes", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Remittance = "Invoice 4711/2026, ref: (A+B)."
		sess := applyRule(t, fixture.Render(), CharsetRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "sepa_charset", true)
	})
}

func TestReferenceLengthRule(t *testing.T) {
	t.Run("35 characters pass", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.MsgID = strings.Repeat("M", 35)
		sess := applyRule(t, fixture.Render(), ReferenceLengthRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "reference_length", true)
	})

	t.Run("36 characters fail", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.MsgID = strings.Repeat("M", 36)
		sess := applyRule(t, fixture.Render(), ReferenceLengthRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Equal(t, validation.SeverityError, findings[0].Severity)
		assert.Equal(t, "MsgId", findings[0].Tag)
		assert.Contains(t, findings[0].Message, "max. 35 characters allowed, found: 36")
		checkOutcome(t, sess, "reference_length", false)
	})

	t.Run("multibyte references are counted per character", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.MsgID = strings.Repeat("Ü", 20)
		sess := applyRule(t, fixture.Render(), ReferenceLengthRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "reference_length", true)
	})

	t.Run("36 multibyte characters fail with the character count", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.MsgID = strings.Repeat("Ü", 36)
		sess := applyRule(t, fixture.Render(), ReferenceLengthRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "max. 35 characters allowed, found: 36")
		checkOutcome(t, sess, "reference_length", false)
	})

	t.Run("every reference field is scanned", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].PmtInfID = strings.Repeat("B", 40)
		fixture.Batches[0].Txs[0].EndToEndID = strings.Repeat("E", 40)
		sess := applyRule(t, fixture.Render(), ReferenceLengthRule{})
		assert.Len(t, sess.Findings(), 2)
	})
}

func TestServiceLevelRule(t *testing.T) {
	t.Run("known codes pass", func(t *testing.T) {
		for _, code := range []string{"SEPA", "URGP", "SDVA", "NURG"} {
			fixture := testutil.ValidPayment()
			fixture.Batches[0].ServiceLevel = code
			sess := applyRule(t, fixture.Render(), ServiceLevelRule{})
			assert.Empty(t, sess.Findings(), "code %s", code)
		}
	})

	t.Run("unknown code warns", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].ServiceLevel = "FAST"
		sess := applyRule(t, fixture.Render(), ServiceLevelRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Equal(t, validation.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "unknown service level: FAST (allowed: SEPA, URGP, SDVA, NURG)", findings[0].Message)
		checkOutcome(t, sess, "service_level", false)
	})
}

func TestInstantLimitRule(t *testing.T) {
	t.Run("exactly the ceiling passes", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].ServiceLevel = "URGP"
		fixture.Batches[0].Txs[0].Amount = "100000.00"
		sess := applyRule(t, fixture.Render(), InstantLimitRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "amount_limits", true)
	})

	t.Run("above the ceiling fails", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].ServiceLevel = "URGP"
		fixture.Batches[0].Txs[0].Amount = "100000.01"
		sess := applyRule(t, fixture.Render(), InstantLimitRule{})

		findings := sess.Findings()
		require.Len(t, findings, 1)
		assert.Equal(t, validation.SeverityError, findings[0].Severity)
		assert.Equal(t, "SEPA Instant allows max. 100,000.00 EUR, found: 100,000.01 EUR", findings[0].Message)
		checkOutcome(t, sess, "amount_limits", false)
	})

	t.Run("standard batches are not capped", func(t *testing.T) {
		fixture := testutil.ValidPayment()
		fixture.Batches[0].Txs[0].Amount = "5000000.00"
		sess := applyRule(t, fixture.Render(), InstantLimitRule{})
		assert.Empty(t, sess.Findings())
		checkOutcome(t, sess, "amount_limits", true)
	})
}
