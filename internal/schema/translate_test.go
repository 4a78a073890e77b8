package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func qualified(local string) string {
	return "{" + Namespace + "}" + local
}

func TestTranslateKnownShapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantTag string
		wantMsg string
	}{
		{
			name:    "sequence violation",
			raw:     "element '" + qualified("GrpHdr") + "' does not match sequence model: a required field is missing, repeated, or out of order",
			wantTag: "GrpHdr",
			wantMsg: "Error in group header: the structure is incomplete. A required field is missing or out of order.",
		},
		{
			name:    "choice violation",
			raw:     "content of element '" + qualified("Amt") + "' does not match choice model",
			wantTag: "Amt",
			wantMsg: "Error in amount: a choice is required here, but the content or format does not match any allowed option.",
		},
		{
			name:    "missing attribute",
			raw:     "element '" + qualified("InstdAmt") + "' is missing required attribute 'Ccy'",
			wantTag: "InstdAmt",
			wantMsg: "Error in instructed amount: a required attribute is missing (e.g. the currency code 'Ccy').",
		},
		{
			name:    "unexpected child",
			raw:     "unexpected child element '" + qualified("Bogus") + "' in element '" + qualified("GrpHdr") + "'",
			wantTag: "Bogus",
			wantMsg: "Error in Bogus: this field is not permitted at this position.",
		},
		{
			name:    "invalid value",
			raw:     "element '" + qualified("Dt") + "': value 'never' is not a valid ISODate",
			wantTag: "Dt",
			wantMsg: "Error in date: the value is invalid (wrong format or not an allowed value).",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, msg := Translate(Violation{Raw: tt.raw})
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestTranslateFallback(t *testing.T) {
	tag, msg := Translate(Violation{
		Raw: "element '" + qualified("MsgId") + "' confused the engine in a novel way",
	})
	assert.Equal(t, "MsgId", tag)
	assert.Equal(t, "Error in message ID: element 'MsgId' confused the engine in a novel way", msg)
}

func TestTranslateUnknownTag(t *testing.T) {
	tag, msg := Translate(Violation{Raw: "something without a qualified name"})
	assert.Equal(t, "Unknown", tag)
	assert.Contains(t, msg, "Error in Unknown:")
}
