package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIMEIncludesBodyAndAttachment(t *testing.T) {
	msg := Message{
		To:      "asha@example.com",
		Subject: "Payslip for June 2024",
		Body:    "Please find your payslip attached.",
		Attachments: []Attachment{
			{
				Filename:    "payslip_EMP-000001_6_2024.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.4 fake"),
			},
		},
	}

	out, err := BuildMIME("payroll@example.com", msg)

	assert.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "From: payroll@example.com")
	assert.Contains(t, s, "To: asha@example.com")
	assert.Contains(t, s, "Subject: Payslip for June 2024")
	assert.Contains(t, s, "multipart/mixed")
	assert.Contains(t, s, "Please find your payslip attached.")
	assert.Contains(t, s, `attachment; filename="payslip_EMP-000001_6_2024.pdf"`)
	assert.Contains(t, s, "Content-Transfer-Encoding: base64")
}

func TestBuildMIMEWrapsBase64Lines(t *testing.T) {
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i % 251)
	}

	out, err := BuildMIME("payroll@example.com", Message{
		To:          "asha@example.com",
		Subject:     "x",
		Attachments: []Attachment{{Filename: "a.bin", Data: data}},
	})

	assert.NoError(t, err)
	for _, line := range strings.Split(string(out), "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
	}
}
