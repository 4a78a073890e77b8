package testutil

import (
	"fmt"
	"strings"
)

// PaymentFixture builds pain.001.001.09 documents for tests. The zero value
// is not usable; start from ValidPayment and mutate the fields under test.
type PaymentFixture struct {
	Namespace string
	MsgID     string
	CreDtTm   string
	NbOfTxs   string
	Initiator string
	Batches   []BatchFixture
}

// BatchFixture is one PmtInf block.
type BatchFixture struct {
	PmtInfID     string
	ServiceLevel string
	ReqdExctnDt  string
	DebtorName   string
	DebtorIBAN   string
	DebtorBIC    string
	Txs          []TxFixture
}

// TxFixture is one CdtTrfTxInf block.
type TxFixture struct {
	EndToEndID   string
	UETR         string
	Amount       string
	Currency     string
	CreditorName string
	CreditorAddr []string
	CreditorIBAN string
	CreditorBIC  string
	Remittance   string
}

// ValidPayment returns a document that passes the schema check and every
// generic rule: a single EUR transfer between two German accounts.
func ValidPayment() PaymentFixture {
	return PaymentFixture{
		Namespace: "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09",
		MsgID:     "MSG-2026-0001",
		CreDtTm:   "2026-01-15T09:30:00",
		NbOfTxs:   "1",
		Initiator: "Muster GmbH",
		Batches: []BatchFixture{
			{
				PmtInfID:    "BATCH-001",
				ReqdExctnDt: "2026-01-16",
				DebtorName:  "Muster GmbH",
				DebtorIBAN:  "DE02120300000000202051",
				DebtorBIC:   "BYLADEM1001",
				Txs: []TxFixture{
					{
						EndToEndID:   "E2E-001",
						Amount:       "1250.00",
						Currency:     "EUR",
						CreditorName: "Beispiel AG",
						CreditorIBAN: "DE02500105170137075030",
						CreditorBIC:  "INGDDEFFXXX",
						Remittance:   "Invoice 4711",
					},
				},
			},
		},
	}
}

// Render serializes the fixture to an XML document, one element per line so
// line-based assertions stay stable.
func (d PaymentFixture) Render() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<Document xmlns=%q>\n", d.Namespace)
	b.WriteString("  <CstmrCdtTrfInitn>\n")
	b.WriteString("    <GrpHdr>\n")
	fmt.Fprintf(&b, "      <MsgId>%s</MsgId>\n", d.MsgID)
	fmt.Fprintf(&b, "      <CreDtTm>%s</CreDtTm>\n", d.CreDtTm)
	fmt.Fprintf(&b, "      <NbOfTxs>%s</NbOfTxs>\n", d.NbOfTxs)
	fmt.Fprintf(&b, "      <InitgPty><Nm>%s</Nm></InitgPty>\n", d.Initiator)
	b.WriteString("    </GrpHdr>\n")
	for _, batch := range d.Batches {
		batch.render(&b)
	}
	b.WriteString("  </CstmrCdtTrfInitn>\n")
	b.WriteString("</Document>\n")
	return b.String()
}

func (batch BatchFixture) render(b *strings.Builder) {
	b.WriteString("    <PmtInf>\n")
	fmt.Fprintf(b, "      <PmtInfId>%s</PmtInfId>\n", batch.PmtInfID)
	b.WriteString("      <PmtMtd>TRF</PmtMtd>\n")
	if batch.ServiceLevel != "" {
		fmt.Fprintf(b, "      <PmtTpInf><SvcLvl><Cd>%s</Cd></SvcLvl></PmtTpInf>\n", batch.ServiceLevel)
	}
	fmt.Fprintf(b, "      <ReqdExctnDt><Dt>%s</Dt></ReqdExctnDt>\n", batch.ReqdExctnDt)
	fmt.Fprintf(b, "      <Dbtr><Nm>%s</Nm></Dbtr>\n", batch.DebtorName)
	fmt.Fprintf(b, "      <DbtrAcct><Id><IBAN>%s</IBAN></Id></DbtrAcct>\n", batch.DebtorIBAN)
	fmt.Fprintf(b, "      <DbtrAgt><FinInstnId><BICFI>%s</BICFI></FinInstnId></DbtrAgt>\n", batch.DebtorBIC)
	for _, tx := range batch.Txs {
		tx.render(b)
	}
	b.WriteString("    </PmtInf>\n")
}

func (tx TxFixture) render(b *strings.Builder) {
	b.WriteString("      <CdtTrfTxInf>\n")
	b.WriteString("        <PmtId>\n")
	fmt.Fprintf(b, "          <EndToEndId>%s</EndToEndId>\n", tx.EndToEndID)
	if tx.UETR != "" {
		fmt.Fprintf(b, "          <UETR>%s</UETR>\n", tx.UETR)
	}
	b.WriteString("        </PmtId>\n")
	fmt.Fprintf(b, "        <Amt><InstdAmt Ccy=%q>%s</InstdAmt></Amt>\n", tx.Currency, tx.Amount)
	if tx.CreditorBIC != "" {
		fmt.Fprintf(b, "        <CdtrAgt><FinInstnId><BICFI>%s</BICFI></FinInstnId></CdtrAgt>\n", tx.CreditorBIC)
	}
	b.WriteString("        <Cdtr>\n")
	fmt.Fprintf(b, "          <Nm>%s</Nm>\n", tx.CreditorName)
	if len(tx.CreditorAddr) > 0 {
		b.WriteString("          <PstlAdr>\n")
		for _, line := range tx.CreditorAddr {
			fmt.Fprintf(b, "            <AdrLine>%s</AdrLine>\n", line)
		}
		b.WriteString("          </PstlAdr>\n")
	}
	b.WriteString("        </Cdtr>\n")
	fmt.Fprintf(b, "        <CdtrAcct><Id><IBAN>%s</IBAN></Id></CdtrAcct>\n", tx.CreditorIBAN)
	if tx.Remittance != "" {
		b.WriteString("        <RmtInf>\n")
		fmt.Fprintf(b, "          <Ustrd>%s</Ustrd>\n", tx.Remittance)
		b.WriteString("        </RmtInf>\n")
	}
	b.WriteString("      </CdtTrfTxInf>\n")
}
