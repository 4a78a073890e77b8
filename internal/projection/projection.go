// Package projection turns pain.001 bytes into a display-oriented record
// tree. It is a pure read model for rendering: it never consults findings
// and never fails — malformed input yields no projection, which callers
// must treat as a user-visible state of its own.
package projection

import (
	"strconv"
	"strings"

	"sepalint/internal/document"
	pkgstrings "sepalint/pkg/platform/strings"
)

const missing = "-"

// Payment is the projected document: one header plus the payment batches.
type Payment struct {
	Header  Header  `json:"header"`
	Batches []Batch `json:"batches"`
}

// Header summarizes the group header.
type Header struct {
	MessageID       string `json:"message_id"`
	CreatedAt       string `json:"created_at"`
	InitiatingParty string `json:"initiating_party"`
	TxCount         string `json:"tx_count"`
	ControlSum      string `json:"control_sum"`
}

// Batch is one PmtInf block.
type Batch struct {
	ID            string        `json:"id"`
	ExecutionDate string        `json:"execution_date"`
	Debtor        string        `json:"debtor"`
	DebtorIBAN    string        `json:"debtor_iban"`
	DebtorBIC     string        `json:"debtor_bic"`
	ControlSum    string        `json:"control_sum"`
	TxCount       string        `json:"tx_count"`
	Currency      string        `json:"currency"`
	Transactions  []Transaction `json:"transactions"`
}

// Transaction is one credit transfer inside a batch.
type Transaction struct {
	EndToEndID    string `json:"end_to_end_id"`
	InstructionID string `json:"instruction_id,omitempty"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Creditor      string `json:"creditor"`
	CreditorIBAN  string `json:"creditor_iban"`
	CreditorBIC   string `json:"creditor_bic"`
	PurposeCode   string `json:"purpose_code,omitempty"`
	Remittance    string `json:"remittance,omitempty"`
}

// Build projects the document for display. Returns nil when the bytes
// cannot be parsed at all; "no projection" is a first-class result.
func Build(data []byte) *Payment {
	root, err := document.Parse(data)
	if err != nil {
		return nil
	}
	initn := root.Child("CstmrCdtTrfInitn")
	if initn == nil {
		return nil
	}

	p := &Payment{Header: Header{
		MessageID:       missing,
		CreatedAt:       missing,
		InitiatingParty: missing,
		TxCount:         missing,
		ControlSum:      missing,
	}}

	if gh := initn.Child("GrpHdr"); gh != nil {
		p.Header.MessageID = gh.PathText(missing, "MsgId")
		p.Header.CreatedAt = gh.PathText(missing, "CreDtTm")
		p.Header.InitiatingParty = gh.PathText(missing, "InitgPty", "Nm")
		p.Header.TxCount = gh.PathText(missing, "NbOfTxs")
		p.Header.ControlSum = gh.PathText(missing, "CtrlSum")
	}

	for _, pmt := range initn.Descendants("PmtInf") {
		p.Batches = append(p.Batches, buildBatch(pmt))
	}
	return p
}

func buildBatch(pmt *document.Element) Batch {
	ccy := "EUR"
	if first := pmt.FirstDescendant("InstdAmt"); first != nil {
		if c, ok := first.Attr("Ccy"); ok {
			ccy = c
		}
	}

	date := pmt.PathText("", "ReqdExctnDt", "Dt")
	if date == "" {
		date = pmt.PathText(missing, "ReqdExctnDt")
	}

	b := Batch{
		ID:            pmt.PathText(missing, "PmtInfId"),
		ExecutionDate: date,
		Debtor:        pmt.PathText(missing, "Dbtr", "Nm"),
		DebtorIBAN:    pmt.PathText(missing, "DbtrAcct", "Id", "IBAN"),
		DebtorBIC:     pmt.PathText(missing, "DbtrAgt", "FinInstnId", "BICFI"),
		ControlSum:    pmt.PathText(missing, "CtrlSum"),
		TxCount:       pmt.PathText(missing, "NbOfTxs"),
		Currency:      ccy,
	}

	for _, tx := range pmt.Descendants("CdtTrfTxInf") {
		b.Transactions = append(b.Transactions, buildTransaction(tx, ccy))
	}
	return b
}

func buildTransaction(tx *document.Element, batchCcy string) Transaction {
	amount := "0.00"
	ccy := batchCcy
	if amt := tx.FirstDescendant("InstdAmt"); amt != nil {
		if amt.Text() != "" {
			amount = amt.Text()
		}
		if c, ok := amt.Attr("Ccy"); ok {
			ccy = c
		}
	}

	var remittance []string
	if rmt := tx.Child("RmtInf"); rmt != nil {
		for _, u := range rmt.Descendants("Ustrd") {
			if u.Text() != "" {
				remittance = append(remittance, u.Text())
			}
		}
	}

	return Transaction{
		EndToEndID:    tx.PathText(missing, "PmtId", "EndToEndId"),
		InstructionID: tx.PathText("", "PmtId", "InstrId"),
		Amount:        amount,
		Currency:      ccy,
		Creditor:      tx.PathText(missing, "Cdtr", "Nm"),
		CreditorIBAN:  tx.PathText(missing, "CdtrAcct", "Id", "IBAN"),
		CreditorBIC:   tx.PathText(missing, "CdtrAgt", "FinInstnId", "BICFI"),
		PurposeCode:   tx.PathText("", "Purp", "Cd"),
		Remittance:    strings.Join(remittance, " "),
	}
}

// FormatAmount renders an amount with thousands separators, two decimals,
// and the currency appended. Unparsable values pass through unformatted so
// the UI still shows what the document contains.
func FormatAmount(amount, currency string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return amount + " " + currency
	}
	return pkgstrings.GroupThousands(strconv.FormatFloat(v, 'f', 2, 64)) + " " + currency
}
