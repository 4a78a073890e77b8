package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Schema engines speak in namespace-qualified, model-theoretic messages.
// Translate is the best-effort bridge to something a payments reviewer can
// act on: extract the violating field, map it through the label table, and
// pick an explanation from the known message shapes. Unknown shapes fall
// back to the namespace-stripped raw message, never to a failure.

// fieldLabels maps pain.001 tags to reviewer-friendly labels. Unknown tags
// pass through unchanged.
var fieldLabels = map[string]string{
	"GrpHdr":      "group header",
	"MsgId":       "message ID",
	"CreDtTm":     "creation timestamp",
	"NbOfTxs":     "transaction count",
	"CtrlSum":     "control sum",
	"InitgPty":    "initiating party",
	"PmtInf":      "payment batch",
	"PmtInfId":    "batch reference",
	"PmtMtd":      "payment method",
	"ReqdExctnDt": "execution date",
	"Dt":          "date",
	"DtTm":        "date and time",
	"Dbtr":        "debtor",
	"DbtrAcct":    "debtor account",
	"DbtrAgt":     "debtor bank",
	"Cdtr":        "creditor",
	"CdtrAcct":    "creditor account",
	"CdtrAgt":     "creditor bank",
	"CdtTrfTxInf": "transaction",
	"PmtId":       "payment identification",
	"EndToEndId":  "end-to-end ID",
	"UETR":        "end-to-end transaction reference (UETR)",
	"InstdAmt":    "instructed amount",
	"Amt":         "amount",
	"IBAN":        "IBAN",
	"BICFI":       "BIC",
	"SvcLvl":      "service level",
	"Ustrd":       "remittance information",
	"AdrLine":     "address line",
}

// tagPattern finds the first namespace-qualified field name in a raw engine
// message, e.g. {urn:...}MsgId'.
var tagPattern = regexp.MustCompile(`\}([A-Za-z0-9]+)'`)

// Translate converts a structural violation into a display tag and a
// human-readable explanation.
func Translate(v Violation) (tag, message string) {
	tag = extractTag(v.Raw)
	label := tag
	if nice, ok := fieldLabels[tag]; ok {
		label = nice
	}

	switch {
	case strings.Contains(v.Raw, "choice model"):
		message = fmt.Sprintf("Error in %s: a choice is required here, but the content or format does not match any allowed option.", label)
	case strings.Contains(v.Raw, "sequence model"):
		message = fmt.Sprintf("Error in %s: the structure is incomplete. A required field is missing or out of order.", label)
	case strings.Contains(v.Raw, "missing required attribute"):
		message = fmt.Sprintf("Error in %s: a required attribute is missing (e.g. the currency code 'Ccy').", label)
	case strings.Contains(v.Raw, "unexpected child"):
		message = fmt.Sprintf("Error in %s: this field is not permitted at this position.", label)
	case strings.Contains(v.Raw, "is not a valid"):
		message = fmt.Sprintf("Error in %s: the value is invalid (wrong format or not an allowed value).", label)
	default:
		message = fmt.Sprintf("Error in %s: %s", label, stripNamespace(v.Raw))
	}
	return tag, message
}

func extractTag(raw string) string {
	if m := tagPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return "Unknown"
}

func stripNamespace(raw string) string {
	return strings.ReplaceAll(raw, "{"+Namespace+"}", "")
}
